package usecases

// ComposePrompt joins a prompt template and the user text with a single newline.
// The template is used verbatim; no placeholders are substituted.
func ComposePrompt(templateText, userText string) string {
	return templateText + "\n" + userText
}
