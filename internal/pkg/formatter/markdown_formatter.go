package formatter

import (
	"bytes"
	"fmt"

	"github.com/pageforge/landing-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(title string, page *entity.GeneratedTemplate) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title)
	renderMarkdown(&buf, page)
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}

// renderMarkdown writes the landing-page document section by section in the
// order the preview renderer displays them.
func renderMarkdown(buf *bytes.Buffer, page *entity.GeneratedTemplate) {
	s := page.LandingPage.Sections

	if hero := s.Hero; hero != nil {
		fmt.Fprintf(buf, "## %s\n\n", hero.Headline)
		fmt.Fprintf(buf, "**%s**\n\n", hero.Subheadline)
		fmt.Fprintf(buf, "%s\n\n", hero.Description)
	}

	if svc := s.Services; svc != nil {
		fmt.Fprintf(buf, "## %s\n\n%s\n\n", svc.Title, svc.Description)
		for _, item := range svc.Items {
			fmt.Fprintf(buf, "- **%s** — %s\n", item.Title, item.Description)
		}
		buf.WriteString("\n")
	}

	if ben := s.Benefits; ben != nil {
		fmt.Fprintf(buf, "## %s\n\n", ben.Title)
		for _, item := range ben.Items {
			fmt.Fprintf(buf, "- **%s** — %s\n", item.Title, item.Description)
		}
		buf.WriteString("\n")
	}

	if tst := s.Testimonials; tst != nil {
		fmt.Fprintf(buf, "## %s\n\n", tst.Title)
		for _, item := range tst.Items {
			fmt.Fprintf(buf, "> %s\n>\n> — %s, %s\n\n", item.Quote, item.Author, item.Role)
		}
	}

	if cta := s.CTA; cta != nil {
		fmt.Fprintf(buf, "## %s\n\n%s\n\n", cta.Headline, cta.Description)
		fmt.Fprintf(buf, "**[%s]**\n\n", cta.ButtonText)
		ci := cta.ContactInfo
		fmt.Fprintf(buf, "%s | %s | %s\n\n", ci.Address, ci.Phone, ci.Email)
		fmt.Fprintf(buf, "Instagram: %s · LinkedIn: %s\n", ci.SocialMedia.Instagram, ci.SocialMedia.LinkedIn)
	}
}
