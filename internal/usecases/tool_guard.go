package usecases

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

// CheckToolInvocation verifies that the invocation targets a listed tool and that
// its arguments satisfy the tool's advertised input schema. Tools that do not
// advertise a schema accept any arguments.
func CheckToolInvocation(catalog domain.ToolCatalog, invocation domain.ToolInvocation) error {
	tool, found := catalog.Find(invocation.ToolName)
	if !found {
		return domain.NewNotFoundErr(fmt.Sprintf(
			"tool %q is not registered (available: %s)",
			invocation.ToolName,
			strings.Join(catalog.Names(), ", "),
		))
	}
	if !tool.HasInputSchema() {
		return nil
	}

	args := invocation.Arguments
	if args == nil {
		args = map[string]any{}
	}
	doc, err := json.Marshal(args)
	if err != nil {
		return domain.NewValidationErr(fmt.Sprintf("tool arguments are not serializable: %v", err))
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(tool.InputSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return domain.NewValidationErr(fmt.Sprintf("tool %s has an unusable input schema: %v", tool.Name, err))
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			problems = append(problems, re.String())
		}
		return domain.NewValidationErr(fmt.Sprintf(
			"invalid arguments for tool %s: %s",
			tool.Name,
			strings.Join(problems, "; "),
		))
	}

	return nil
}
