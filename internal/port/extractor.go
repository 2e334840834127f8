package port

import "context"

// TextExtractor turns an image file into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}
