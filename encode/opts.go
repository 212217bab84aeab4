package encode

import "github.com/kane-format/kane/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodePath labels every record with the path of its source.
func EncodePath(p string) EncodeOption {
	return func(es *EncState) { es.path = p }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
