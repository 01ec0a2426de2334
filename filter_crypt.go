package pdf

// applyStreamCrypt is the stream pipeline's encryption stage: it runs after
// the filter stage (§4.4) and is transparent to the stream dictionary - the
// crypt filter never appears in /Filter, it is implied by the document's
// /Encrypt dictionary.
func applyStreamCrypt(enc *encryptInfo, ref Reference, buf []byte) ([]byte, error) {
	if enc == nil {
		return buf, nil
	}
	return enc.EncryptStreamBytes(ref, buf)
}
