package render

import (
	"fmt"

	"github.com/beevik/etree"
)

// Verify re-parses a rendered book body and fails if the markup is not
// well formed. The emitter keeps tags balanced by construction, so a failure
// here points at raw markup smuggled through authored text.
func Verify(body []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return fmt.Errorf("rendered body is not well formed: %w", err)
	}
	if doc.Root() == nil {
		return fmt.Errorf("rendered body is empty")
	}
	return nil
}
