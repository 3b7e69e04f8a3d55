package imagegen

import "context"

// EditRequest is the normalized request passed to the image provider.
type EditRequest struct {
	Prompt   string
	ImagePNG []byte
	Filename string
	Size     string
	N        int
}

// Editor is the contract implemented by the image provider client.
type Editor interface {
	Edit(ctx context.Context, req EditRequest) ([][]byte, error)
}
