package codec

// Codec compresses a response body in place of the identity coding.
type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	// Encode compresses src into a freshly allocated buffer.
	Encode(src []byte) ([]byte, error)
}
