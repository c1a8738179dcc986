package cache

// Keyer generates cache keys for pipeline stages.
//
// Implementations must include every option that affects a stage's output in
// the generated key, so that a cached result is only ever served for an
// identical request.
type Keyer interface {
	// OutlineKey generates a key for a generated outline.
	OutlineKey(topic string, opts OutlineKeyOpts) string

	// ImageKey generates a key for a generated illustration.
	ImageKey(prompt string, opts ImageKeyOpts) string

	// DeckKey generates a key for a rendered deck, based on the content hash
	// of the composed outline.
	DeckKey(outlineHash string, opts DeckKeyOpts) string
}

// OutlineKeyOpts are the options that affect outline generation.
type OutlineKeyOpts struct {
	Model      string `json:"model"`
	SlideCount int    `json:"slide_count"`
	Language   string `json:"language,omitempty"`
}

// ImageKeyOpts are the options that affect image generation.
type ImageKeyOpts struct {
	Model string `json:"model"`
	Size  string `json:"size"`
}

// DeckKeyOpts are the options that affect deck rendering.
type DeckKeyOpts struct {
	Theme      string `json:"theme"`
	WithImages bool   `json:"with_images"`
	Conclusion bool   `json:"conclusion"`
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// OutlineKey hashes the topic together with the generation options.
func (k *DefaultKeyer) OutlineKey(topic string, opts OutlineKeyOpts) string {
	return hashKey("outline", topic, opts)
}

// ImageKey hashes the image prompt together with the generation options.
func (k *DefaultKeyer) ImageKey(prompt string, opts ImageKeyOpts) string {
	return hashKey("image", prompt, opts)
}

// DeckKey hashes the outline content hash together with the render options.
func (k *DefaultKeyer) DeckKey(outlineHash string, opts DeckKeyOpts) string {
	return hashKey("deck", outlineHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
