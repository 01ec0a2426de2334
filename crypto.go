package pdf

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/xdg-go/stringprep"
)

// cipherType denotes the cipher a crypt filter applies.
type cipherType int

const (
	cipherRC4 cipherType = iota
	cipherAES
)

func (c cipherType) String() string {
	if c == cipherAES {
		return "AES"
	}
	return "RC4"
}

// Printing controls what level of printing, if any, the Standard Security
// Handler grants to User access.
type Printing int

const (
	PrintNone Printing = iota
	PrintLowResolution
	PrintHighResolution
)

// Permissions records the capabilities granted to a document opened with
// the user password (or with no password, if none is set).
type Permissions struct {
	Printing             Printing
	Modifying            bool
	Copying              bool
	Annotating           bool
	FillingForms         bool
	ContentAccessibility bool
	DocumentAssembly     bool
}

// PermissionsAll grants every capability. It is not applied automatically:
// an encrypted document whose Permissions are left at the zero value denies
// every capability.
var PermissionsAll = Permissions{
	Printing:             PrintHighResolution,
	Modifying:            true,
	Copying:              true,
	Annotating:           true,
	FillingForms:         true,
	ContentAccessibility: true,
	DocumentAssembly:     true,
}

// packPermissions packs perm into the 32-bit signed P value stored in the
// encryption dictionary. Bit numbers follow the ISO 32000 1-indexed
// convention: bit n occupies 1<<(n-1).
func packPermissions(perm Permissions, algR int) uint32 {
	var forbidden uint32 = 0b11 // bits 1-2 reserved, must read as 0

	if !perm.Copying {
		forbidden |= 1 << (5 - 1)
	}

	if algR <= 2 {
		if perm.Printing == PrintNone {
			forbidden |= 1 << (3 - 1)
		}
		if !perm.Modifying {
			forbidden |= 1 << (4 - 1)
		}
		if !perm.Annotating {
			forbidden |= 1 << (6 - 1)
		}
		return ^forbidden
	}

	switch perm.Printing {
	case PrintNone:
		forbidden |= 1<<(3-1) | 1<<(12-1)
	case PrintLowResolution:
		forbidden |= 1 << (12 - 1)
	case PrintHighResolution:
		// both printing bits remain permitted
	}
	if !perm.Modifying {
		forbidden |= 1 << (4 - 1)
	}
	if !perm.Annotating {
		forbidden |= 1 << (6 - 1)
	}
	if !perm.FillingForms {
		forbidden |= 1 << (9 - 1)
	}
	if !perm.ContentAccessibility {
		forbidden |= 1 << (10 - 1)
	}
	if !perm.DocumentAssembly {
		forbidden |= 1 << (11 - 1)
	}
	return ^forbidden
}

// stdSecHandler computes and holds the Standard Security Handler state for a
// document being authored. It never reads an existing Encrypt dictionary:
// this writer only ever mints fresh keys.
type stdSecHandler struct {
	algV, algR int
	keyBits    int

	O, U   []byte
	OE, UE []byte
	Perms  []byte
	P      uint32

	key []byte
}

// newStdSecHandler derives a file encryption key and the O/U (and, for V5,
// OE/UE/Perms) entries for a freshly authored document.
func newStdSecHandler(fileID []byte, userPwd, ownerPwd string, perm Permissions, sp secParams) (*stdSecHandler, error) {
	if ownerPwd == "" {
		ownerPwd = userPwd
	}

	sec := &stdSecHandler{
		algV:    sp.algV,
		algR:    sp.algR,
		keyBits: sp.keyBits,
		P:       packPermissions(perm, sp.algR),
	}

	switch sp.algR {
	case 2, 3, 4:
		paddedUser, err := padPasswd(userPwd)
		if err != nil {
			return nil, err
		}
		paddedOwner, err := padPasswd(ownerPwd)
		if err != nil {
			return nil, err
		}
		sec.O = sec.computeO(paddedUser, paddedOwner)
		sec.key = sec.computeFileEncryptionKey(paddedUser, fileID)
		sec.U = sec.computeU(sec.key, fileID)
	case 5:
		utf8User, err := utf8Passwd(userPwd)
		if err != nil {
			return nil, err
		}
		utf8Owner, err := utf8Passwd(ownerPwd)
		if err != nil {
			return nil, err
		}
		sec.key = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, sec.key); err != nil {
			return nil, err
		}
		sec.U, sec.UE, err = computeUAndUE(utf8User, sec.key)
		if err != nil {
			return nil, err
		}
		sec.O, sec.OE, err = computeOAndOE(utf8Owner, sec.U, sec.key)
		if err != nil {
			return nil, err
		}
		sec.Perms = computePerms(sec.P, sec.key)
	default:
		return nil, fmt.Errorf("pdf: unsupported security handler revision R=%d", sp.algR)
	}

	return sec, nil
}

// Algorithm 2: file encryption key, R <= 4.
func (sec *stdSecHandler) computeFileEncryptionKey(paddedUserPwd, fileID []byte) []byte {
	h := md5.New()
	h.Write(paddedUserPwd)
	h.Write(sec.O)
	h.Write([]byte{byte(sec.P), byte(sec.P >> 8), byte(sec.P >> 16), byte(sec.P >> 24)})
	h.Write(fileID)
	key := h.Sum(nil)

	if sec.algR >= 3 {
		for i := 0; i < 50; i++ {
			h.Reset()
			h.Write(key[:sec.keyBits/8])
			key = h.Sum(key[:0])
		}
	}
	return key[:sec.keyBits/8]
}

// Algorithm 3: owner entry, R <= 4.
func (sec *stdSecHandler) computeO(paddedUserPwd, paddedOwnerPwd []byte) []byte {
	h := md5.New()
	h.Write(paddedOwnerPwd)
	sum := h.Sum(nil)
	if sec.algR >= 3 {
		for i := 0; i < 50; i++ {
			h.Reset()
			h.Write(sum[:sec.keyBits/8])
			sum = h.Sum(sum[:0])
		}
	}
	rc4key := sum[:sec.keyBits/8]

	c, _ := rc4.NewCipher(rc4key)
	O := make([]byte, 32)
	c.XORKeyStream(O, paddedUserPwd)
	if sec.algR >= 3 {
		tmp := make([]byte, len(rc4key))
		for i := byte(1); i <= 19; i++ {
			for j := range tmp {
				tmp[j] = rc4key[j] ^ i
			}
			c, _ = rc4.NewCipher(tmp)
			c.XORKeyStream(O, O)
		}
	}
	return O
}

// Algorithm 4/5: user entry.
func (sec *stdSecHandler) computeU(fileKey, fileID []byte) []byte {
	U := make([]byte, 32)
	if sec.algR == 2 {
		c, _ := rc4.NewCipher(fileKey)
		c.XORKeyStream(U, passwdPad)
		return U
	}

	h := md5.New()
	h.Write(passwdPad)
	h.Write(fileID)
	U = h.Sum(U[:0])
	c, _ := rc4.NewCipher(fileKey)
	c.XORKeyStream(U, U)

	tmp := make([]byte, len(fileKey))
	for i := byte(1); i <= 19; i++ {
		for j := range tmp {
			tmp[j] = fileKey[j] ^ i
		}
		c, _ = rc4.NewCipher(tmp)
		c.XORKeyStream(U, U)
	}
	return append(U[:16], make([]byte, 16)...)
}

// R5 entries, per the single-round SHA-256 scheme (no Algorithm 2.B
// hardening): two 8-byte salts per password, U/O are 48 bytes, UE/OE are
// AES-256-CBC encryptions of the file key under a salt-derived key.
func computeUAndUE(utf8UserPwd, fileKey []byte) (U, UE []byte, err error) {
	salts := make([]byte, 16)
	if _, err = io.ReadFull(rand.Reader, salts); err != nil {
		return nil, nil, err
	}
	valSalt, keySalt := salts[:8], salts[8:]

	h := sha256.Sum256(append(append([]byte{}, utf8UserPwd...), valSalt...))
	U = append(append([]byte{}, h[:]...), salts...)

	keyHash := sha256.Sum256(append(append([]byte{}, utf8UserPwd...), keySalt...))
	c, err := aes.NewCipher(keyHash[:])
	if err != nil {
		return nil, nil, err
	}
	UE = make([]byte, 32)
	cipher.NewCBCEncrypter(c, zero16).CryptBlocks(UE, fileKey)
	return U, UE, nil
}

func computeOAndOE(utf8OwnerPwd, U, fileKey []byte) (O, OE []byte, err error) {
	salts := make([]byte, 16)
	if _, err = io.ReadFull(rand.Reader, salts); err != nil {
		return nil, nil, err
	}
	valSalt, keySalt := salts[:8], salts[8:]

	input := append(append([]byte{}, utf8OwnerPwd...), valSalt...)
	input = append(input, U...)
	h := sha256.Sum256(input)
	O = append(append([]byte{}, h[:]...), salts...)

	keyInput := append(append([]byte{}, utf8OwnerPwd...), keySalt...)
	keyInput = append(keyInput, U...)
	keyHash := sha256.Sum256(keyInput)
	c, err := aes.NewCipher(keyHash[:])
	if err != nil {
		return nil, nil, err
	}
	OE = make([]byte, 32)
	cipher.NewCBCEncrypter(c, zero16).CryptBlocks(OE, fileKey)
	return O, OE, nil
}

// computePerms builds the 16-byte /Perms block: perms (LE32), FF FF FF FF,
// ASCII "Tadb", 4 random bytes, AES-256-ECB-encrypted under fileKey.
func computePerms(perms uint32, fileKey []byte) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf, perms)
	buf[4], buf[5], buf[6], buf[7] = 0xFF, 0xFF, 0xFF, 0xFF
	buf[8], buf[9], buf[10], buf[11] = 'T', 'a', 'd', 'b'
	_, _ = rand.Read(buf[12:16])

	c, err := aes.NewCipher(fileKey)
	if err != nil {
		return buf
	}
	out := make([]byte, 16)
	c.Encrypt(out, buf)
	return out
}

func utf8Passwd(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, &InvalidPasswordError{Reason: err.Error()}
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}

// padPasswd implements the R2-R4 password padding rule: up to 32 bytes of
// the password (which must be representable in a single byte per code
// point), padded out with passwdPad.
func padPasswd(passwd string) ([]byte, error) {
	buf := make([]byte, 0, len(passwd))
	for _, r := range passwd {
		if r > 0xff {
			return nil, &InvalidPasswordError{Reason: "password contains a code point above U+00FF"}
		}
		buf = append(buf, byte(r))
	}
	if len(buf) > 32 {
		buf = buf[:32]
	}

	padded := make([]byte, 32)
	n := copy(padded, buf)
	copy(padded[n:], passwdPad)
	return padded, nil
}

var passwdPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

var zero16 = make([]byte, 16)

// encryptInfo is the document's active security handler: it derives
// per-object keys and transforms string and stream payloads.
type encryptInfo struct {
	sec    *stdSecHandler
	fileID []byte
}

func newEncryptInfo(fileID []byte, userPwd, ownerPwd string, perm Permissions, v Version) (*encryptInfo, error) {
	if userPwd == "" && ownerPwd == "" {
		return nil, &NoPasswordConfiguredError{}
	}
	sp, ok := versionSecParams[v]
	if !ok {
		sp = versionSecParams[V1_3]
	}
	sec, err := newStdSecHandler(fileID, userPwd, ownerPwd, perm, sp)
	if err != nil {
		return nil, err
	}
	return &encryptInfo{sec: sec, fileID: fileID}, nil
}

// AsDict builds the document's /Encrypt dictionary.
func (enc *encryptInfo) AsDict() Dict {
	d := NewDict()
	d.Set("Filter", Name("Standard"))
	sec := enc.sec
	d.Set("V", Integer(sec.algV))
	d.Set("R", Integer(sec.algR))
	d.Set("O", String(sec.O))
	d.Set("U", String(sec.U))
	d.Set("P", Integer(int32(sec.P)))

	switch sec.algV {
	case 2:
		d.Set("Length", Integer(sec.keyBits))
	case 4:
		d.Set("StmF", Name("StdCF"))
		d.Set("StrF", Name("StdCF"))
		cf := NewDict()
		cf.Set("CFM", Name("AESV2"))
		cf.Set("Length", Integer(16))
		cfDict := NewDict()
		cfDict.Set("StdCF", cf)
		d.Set("CF", cfDict)
	case 5:
		d.Set("StmF", Name("StdCF"))
		d.Set("StrF", Name("StdCF"))
		d.Set("OE", String(sec.OE))
		d.Set("UE", String(sec.UE))
		d.Set("Perms", String(sec.Perms))
		cf := NewDict()
		cf.Set("CFM", Name("AESV3"))
		cf.Set("Length", Integer(32))
		cfDict := NewDict()
		cfDict.Set("StdCF", cf)
		d.Set("CF", cfDict)
	}
	return d
}

// objectKey derives the per-object encryption key (Algorithm 1, step a-d)
// for versions 1/2/4; V5 uses the file key directly with no per-object
// derivation.
func (enc *encryptInfo) objectKey(ref Reference) []byte {
	sec := enc.sec
	if sec.algV == 5 {
		return sec.key
	}

	h := md5.New()
	h.Write(sec.key)
	num, gen := ref.Number(), ref.Generation()
	h.Write([]byte{byte(num), byte(num >> 8), byte(num >> 16), byte(gen), byte(gen >> 8)})
	if sec.algV == 4 {
		h.Write([]byte{0x73, 0x41, 0x6c, 0x54}) // "sAlT"
	}
	sum := h.Sum(nil)

	n := sec.keyBits/8 + 5
	if n > 16 {
		n = 16
	}
	return sum[:n]
}

// EncryptBytes applies Algorithm 1 to a string or byte-buffer payload.
func (enc *encryptInfo) EncryptBytes(ref Reference, buf []byte) ([]byte, error) {
	key := enc.objectKey(ref)
	if enc.sec.algV == 4 || enc.sec.algV == 5 {
		return aesCBCEncryptPKCS7(key, buf)
	}
	c, err := rc4.NewCipher(key)
	if err != nil {
		return nil, err
	}
	c.XORKeyStream(buf, buf)
	return buf, nil
}

func aesCBCEncryptPKCS7(key, buf []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}

	nPad := 16 - len(buf)%16
	padded := make([]byte, len(buf)+nPad)
	copy(padded, buf)
	for i := len(buf); i < len(padded); i++ {
		padded[i] = byte(nPad)
	}

	out := make([]byte, 16+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(c, iv).CryptBlocks(out[16:], padded)
	return out, nil
}

// EncryptStreamBytes applies Algorithm 1 to an already-compressed stream
// payload. Streams are encrypted as a single buffer rather than
// incrementally: the document assembler must know the final, encrypted
// length before it can write the stream's /Length entry, so by the time
// encryption runs the whole (compressed) payload is already in hand.
func (enc *encryptInfo) EncryptStreamBytes(ref Reference, buf []byte) ([]byte, error) {
	return enc.EncryptBytes(ref, buf)
}
