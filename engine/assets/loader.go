package assets

// Loader decodes an asset file. The returned value depends on the asset type.
type Loader interface {
	Load(path string) (interface{}, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (interface{}, error)

func (f LoaderFunc) Load(path string) (interface{}, error) {
	return f(path)
}
