package htmlutil

import (
	"context"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("aocfetch.lib.htmlutil")

// InnerHTML selects every element in `root` matching `selector` and joins
// the inner markup of each match with a newline. No matches yields "".
func InnerHTML(ctx context.Context, root *html.Node, selector string) (string, error) {
	_, span := tracer.Start(ctx, "InnerHTML")
	defer span.End()

	doc := goquery.NewDocumentFromNode(root)

	var parts []string
	var err error
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		inner, renderErr := s.Html()
		if renderErr != nil {
			err = renderErr
			return false
		}
		parts = append(parts, inner)
		return true
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to render inner html")
		return "", err
	}

	span.SetAttributes(
		attribute.String("selector", selector),
		attribute.Int("matches", len(parts)),
	)
	return strings.Join(parts, "\n"), nil
}

// InnerHTMLFromReader parses a document and then calls InnerHTML on it.
func InnerHTMLFromReader(ctx context.Context, r io.Reader, selector string) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	return InnerHTML(ctx, root, selector)
}
