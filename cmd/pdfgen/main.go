// Command pdfgen writes a single-page sample PDF, optionally encrypted
// with the Standard Security Handler.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/inkfathom/pdfgen"
	"github.com/inkfathom/pdfgen/document"
)

func main() {
	out := flag.String("o", "out.pdf", "output file name")
	version := flag.String("version", "1.7", "PDF version (1.3, 1.4, 1.5, 1.6, 1.7, 1.7ext3)")
	encrypt := flag.Bool("encrypt", false, "prompt for a user password and encrypt the document")
	flag.Parse()

	v, err := pdf.ParseVersion(*version)
	if err != nil {
		log.Fatal(err)
	}

	opt := &pdf.WriterOptions{
		Version: v,
		Info:    &pdf.Info{Producer: "pdfgen"},
	}

	if *encrypt {
		pw, err := readPassword("User password: ")
		if err != nil {
			log.Fatal(err)
		}
		opt.UserPassword = pw
		opt.Permissions = pdf.PermissionsAll
	}

	doc, err := document.CreateSinglePage(*out, 612, 792, opt)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprint(doc.Content, "BT /F1 24 Tf 72 700 Td (Hello, pdfgen) Tj ET\n")

	if err := doc.Close(); err != nil {
		log.Fatal(err)
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	buf, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
