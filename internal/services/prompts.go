package services

import (
	"fmt"
	"strings"

	"github.com/uiforge/uiforge-backend/internal/templates"
)

// TaskPrompts holds the three prompts consumed by the agent team, in
// execution order: research first, structure second, styling last. Later
// stages build on earlier stage output through the team runner's
// context-passing convention; the builder itself only produces text.
type TaskPrompts struct {
	Research  string
	Structure string
	Style     string
}

// GenerateComponentName derives a component name from the description: the
// first three whitespace-separated words, each capitalized, concatenated,
// suffixed "Component". Pure function of the description, so the same input
// always names the same artifact.
func GenerateComponentName(description string) string {
	words := strings.Fields(description)
	if len(words) > 3 {
		words = words[:3]
	}
	var b strings.Builder
	for _, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		b.WriteString(string(runes))
	}
	b.WriteString("Component")
	return b.String()
}

const expectedOutputShape = `{
  "code": "<Complete HTML structure styled with Tailwind classes>",
  "notes": "<Short summary of decisions taken>"
}`

// BuildPrompts composes the research, structure and styling prompts for one
// generation request from the component type, the raw user description and
// the matched template.
func BuildPrompts(componentType, description string, t *templates.Template) TaskPrompts {
	propsBlock := formatRelevantProps(description, t)

	var research strings.Builder
	fmt.Fprintf(&research, "Research best practices for creating a %s component using HTML and Tailwind CSS based on the provided description.\n", componentType)
	fmt.Fprintf(&research, "Description: %s\n", description)
	if propsBlock != "" {
		fmt.Fprintf(&research, "\nInclude these specific props based on the description:\n%s\n", propsBlock)
	}
	research.WriteString(`
- Focus on best practices for accessibility, responsiveness, and performance.
- Consider modern UI/UX principles and Tailwind CSS utility classes.
- Ensure the component adheres to design patterns that are common for ` + componentType + ` components.

Respond with a JSON object shaped like:
` + expectedOutputShape + `
Leave "code" empty; put the research summary in "notes".`)

	var structure strings.Builder
	structure.WriteString("Generate a complete, functional, and responsive HTML component using Tailwind CSS based on the given description.\n")
	fmt.Fprintf(&structure, "Component Type: %s\nDescription: %s\n", componentType, description)
	if propsBlock != "" {
		fmt.Fprintf(&structure, "\nReflect these props in the markup:\n%s\n", propsBlock)
	}
	if t != nil && t.Types != "" {
		fmt.Fprintf(&structure, "\nProp types for reference:\n%s\n", t.Types)
	}
	structure.WriteString(`
Requirements:
- Use semantic HTML elements (div, button, img, etc.).
- Include responsive design using Tailwind CSS utility classes.
- Ensure accessibility (aria-* attributes where necessary).
- Focus on modern UI/UX principles with clean, readable HTML.
- Include meaningful default content (placeholder images, text).
- The HTML should be ready to copy-paste into any static website.

Respond with a JSON object shaped like:
` + expectedOutputShape)

	var style strings.Builder
	style.WriteString("Apply Tailwind CSS to the generated markup to make it visually appealing and responsive. Use fixed sizes instead of 'w-full' for inputs and buttons.\n")
	if t != nil && t.DefaultClasses != "" {
		fmt.Fprintf(&style, "\nDefault classes for this component type: %s\n", t.DefaultClasses)
	}
	style.WriteString(`
Requirements:
- Use classes like 'max-w-md' or 'max-w-lg' for fixed sizes.
- Apply background colors, rounded borders, and shadows for a modern look.
- Ensure consistent spacing, padding, and clear focus states.
- Include hover, focus, and disabled states for interactive elements.
- Add error message styling using 'text-red-500' or similar classes.
- Ensure accessibility using appropriate aria-* attributes.

Respond with a JSON object shaped like:
` + expectedOutputShape)

	return TaskPrompts{
		Research:  research.String(),
		Structure: structure.String(),
		Style:     style.String(),
	}
}

func formatRelevantProps(description string, t *templates.Template) string {
	relevant := templates.RelevantProps(description, t)
	if len(relevant) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range relevant {
		fmt.Fprintf(&b, "- %s (%s): %s\n", p.Name, p.Type, p.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
