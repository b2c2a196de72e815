// Command framedump frames one HTTP/1.x message from a file or stdin
// and prints its parts or its normalized wire form.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/oesand/framer"
	"github.com/oesand/framer/specs"
)

var (
	response  = flag.Bool("response", false, "parse a response instead of a request")
	offset    = flag.Int("offset", 0, "byte offset of the message in the input")
	strict    = flag.Bool("strict", false, "fail on a body shorter than its Content-Length")
	validate  = flag.Bool("validate", false, "validate the start line and header fields")
	canonical = flag.Bool("canonical", false, "title-case header names")
	crlf      = flag.Bool("crlf", false, "write CRLF line breaks with -wire")
	decode    = flag.Bool("decode", false, "print the body with its Content-Encoding removed")
	wire      = flag.Bool("wire", false, "print the re-serialized message instead of a dump")
	debug     = flag.Bool("debug", false, "log framing decisions")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: framedump [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "framedump: ", 0)
	if err := run(logger, flag.Arg(0), os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger, path string, out io.Writer) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	parser := &framer.Parser{
		StrictBody:     *strict,
		ValidateFields: *validate,
		CanonicalNames: *canonical,
		Logger:         logger,
		Debug:          *debug,
	}
	msg, bodyStart, err := parser.Parse(specs.WrapBuffer(data), *offset, !*response)
	if err != nil {
		return err
	}

	if *wire {
		serializer := framer.Serializer{}
		if *crlf {
			serializer.LineBreak = specs.LineBreakCRLF
		}
		_, err = out.Write(serializer.Serialize(msg))
		return err
	}
	return dump(out, msg, bodyStart)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func dump(out io.Writer, msg *framer.Message, bodyStart int) error {
	fmt.Fprintf(out, "start line:  %s\n", msg.StartLine)
	for name, value := range msg.Header.All() {
		fmt.Fprintf(out, "header:      %s = %q\n", name, value)
	}
	if contentType := msg.ContentType(); contentType != "" {
		fmt.Fprintf(out, "media type:  %s\n", contentType)
	}
	fmt.Fprintf(out, "body offset: %d\n", bodyStart)
	fmt.Fprintf(out, "body length: %d\n", msg.Body.Len())
	if !msg.BodyComplete() {
		size, _, _ := msg.ContentLength()
		fmt.Fprintf(out, "body truncated: %d of %d bytes\n", msg.Body.Len(), size)
	}

	body := msg.Body.Bytes()
	if *decode {
		decoded, err := msg.DecodeBody(0)
		if err != nil {
			return err
		}
		body = decoded
	}
	if len(body) > 0 {
		fmt.Fprintf(out, "body:\n%s\n", body)
	}
	return nil
}
