package notes

type ErrUnknownEncoding struct {
	Encoding Encoding
}

func (err *ErrUnknownEncoding) Error() string {
	return "unknown release notes encoding: " + string(err.Encoding)
}
