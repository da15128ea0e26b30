package scanner

// Input is the source of the image to scan. It is implemented only by
// DataURLInput and ImageURLInput.
type Input interface {
	isInput()
}

// DataURLInput is an inline image: data:<mime>;base64,<payload>.
type DataURLInput string

// ImageURLInput is an absolute http(s) URL of an image.
type ImageURLInput string

func (DataURLInput) isInput()  {}
func (ImageURLInput) isInput() {}

// NewInput builds an Input from the two optional wire fields.
// Exactly one of them must be non-empty.
func NewInput(imageDataURL, imageURL string) (Input, error) {
	switch {
	case imageDataURL != "" && imageURL == "":
		return DataURLInput(imageDataURL), nil
	case imageURL != "" && imageDataURL == "":
		return ImageURLInput(imageURL), nil
	default:
		return nil, ErrMissingOrAmbiguousInput
	}
}

// Result is a successfully decoded QR payload.
type Result struct {
	Text string `json:"text" yaml:"text"`
}
