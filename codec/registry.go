package codec

// Registry maps type tags to caller-provided codecs. It is consulted before
// the built-in scalar table, so registering a built-in kind's name (for
// example "float") overrides the default codec for that kind. Types declared
// with Named resolve only through the registry.
//
// Register all entries before compiling; a Registry is read-only once handed
// to a Compiler.
type Registry struct {
	entries map[string]FieldCodec
}

// NewRegistry creates an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]FieldCodec)}
}

// Register binds a codec to a type tag, replacing any previous entry.
// A codec without a Matches function never wins sum-format dispatch; set
// Matches when the type participates in sums.
func (r *Registry) Register(tag string, codec FieldCodec) {
	if codec.Matches == nil {
		codec.Matches = func(any) bool { return false }
	}
	r.entries[tag] = codec
}

// Lookup returns the codec registered for tag.
func (r *Registry) Lookup(tag string) (FieldCodec, bool) {
	if r == nil {
		return FieldCodec{}, false
	}
	c, ok := r.entries[tag]
	return c, ok
}
