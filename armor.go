// Copyright 2026 The go-packed Authors

package packed

import (
	"encoding/base64"
	"strings"
)

// Base64Armor wraps inner's encoded bytes in a PGP-style ASCII armor
// block: a BEGIN/END header pair framing a base64 body with an
// appended CRC-24 checksum line, the format openpgp/armor uses. It
// consumes the remainder of the current buffer on decode, so it is
// meant to be the outermost (or only) coder in a document.
//
// encoding/base64 supplies the body codec per spec's treatment of
// base-N text codecs as an external, already-solved concern; CRC-24 has
// no vendored implementation anywhere in the retrieval pack, so it is
// hand-rolled here against the fixed OpenPGP polynomial/init constants.
func Base64Armor(label string, inner Coder) Coder {
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			sub := NewWriter()
			if err := inner.EncodeStream(sub, v); err != nil {
				return err
			}
			buf, err := sub.Finish()
			if err != nil {
				return err
			}
			return w.Bytes([]byte(encodeArmor(label, buf)))
		},
		decode: func(r *Reader) (interface{}, error) {
			rest, err := r.Bytes(r.Len()-r.Pos(), false)
			if err != nil {
				return nil, err
			}
			buf, derr := decodeArmor(label, string(rest))
			if derr != nil {
				return nil, r.fail(KindStructural, derr, "base64 armor decode failed")
			}
			sub := NewReader(buf, r.opts)
			val, verr := inner.DecodeStream(sub)
			if verr != nil {
				return nil, verr
			}
			if err := sub.Finish(); err != nil {
				return nil, err
			}
			return val, nil
		},
	}
}

const armorLineWidth = 64

func encodeArmor(label string, data []byte) string {
	var b strings.Builder
	b.WriteString("-----BEGIN " + label + "-----\n")
	b.WriteString("\n")
	body := base64.StdEncoding.EncodeToString(data)
	for len(body) > armorLineWidth {
		b.WriteString(body[:armorLineWidth])
		b.WriteByte('\n')
		body = body[armorLineWidth:]
	}
	if len(body) > 0 {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	sum := crc24(data)
	checksum := []byte{byte(sum >> 16), byte(sum >> 8), byte(sum)}
	b.WriteByte('=')
	b.WriteString(base64.StdEncoding.EncodeToString(checksum))
	b.WriteByte('\n')
	b.WriteString("-----END " + label + "-----\n")
	return b.String()
}

func decodeArmor(label string, text string) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	begin := "-----BEGIN " + label + "-----"
	end := "-----END " + label + "-----"

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == begin {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrChecksumMismatch
	}

	var bodyLines []string
	var checksumLine string
	for i := start + 1; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if l == end {
			var body strings.Builder
			for _, bl := range bodyLines {
				body.WriteString(bl)
			}
			data, err := base64.StdEncoding.DecodeString(body.String())
			if err != nil {
				return nil, err
			}
			if checksumLine == "" {
				return nil, ErrChecksumMismatch
			}
			want, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(checksumLine, "="))
			if err != nil || len(want) != 3 {
				return nil, ErrChecksumMismatch
			}
			got := crc24(data)
			if byte(got>>16) != want[0] || byte(got>>8) != want[1] || byte(got) != want[2] {
				return nil, ErrChecksumMismatch
			}
			return data, nil
		}
		if strings.HasPrefix(l, "=") {
			checksumLine = l
			continue
		}
		if l != "" {
			bodyLines = append(bodyLines, l)
		}
	}
	return nil, ErrChecksumMismatch
}

const crc24Init = 0xB704CE
const crc24Poly = 0x1864CFB

func crc24(data []byte) uint32 {
	crc := uint32(crc24Init)
	for _, b := range data {
		crc ^= uint32(b) << 16
		for i := 0; i < 8; i++ {
			crc <<= 1
			if crc&0x1000000 != 0 {
				crc ^= crc24Poly
			}
		}
	}
	return crc & 0xFFFFFF
}
