// Package md2play converts Markdown documents to Swift playground markup
// and back.
//
// # Quick Start
//
// Create a service and run a conversion:
//
//	svc := md2play.New()
//
//	play, err := svc.ToPlayground(ctx, "# Hello\n\n``` swift\nprint(1)\n```")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The reverse direction recovers the Markdown form:
//
//	md, err := svc.ToMarkdown(ctx, play)
//
// RoundTrip runs both directions in sequence, which is useful for
// verifying that a document survives the conversion:
//
//	result, err := svc.RoundTrip(ctx, markdown)
//	fmt.Println(result.Playground)
//	fmt.Println(result.Markdown)
//
// # Conversion Pipeline
//
// Each direction follows the same stages:
//
//  1. Line-ending normalization (\r\n and \r become \n)
//  2. Line splitting via a general line-scanning pass
//  3. A per-line transformation mapped over the document and flattened
//
// The transformers recognize a fixed marker vocabulary: the code-opening
// fence "``` swift", the generic fence "```", and the playground markers
// "/*:", "*/" and "//:". Blank lines are collapsed in both directions.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2play.New(
//	    md2play.WithLogger(func(format string, args ...any) {
//	        fmt.Fprintf(os.Stderr, format+"\n", args...)
//	    }),
//	    md2play.WithPreviewStyle("monokai"),
//	)
//
// The logger receives diagnostics (for example unbalanced fence markers);
// the service itself never writes to the console.
//
// # HTML Preview
//
// PreviewHTML renders round-tripped Markdown to a standalone HTML page
// with syntax-highlighted code blocks, for eyeballing round-trip results:
//
//	html, err := svc.PreviewHTML(ctx, markdown)
//	os.WriteFile("preview.html", []byte(html), 0644)
package md2play
