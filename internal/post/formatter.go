package post

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

var (
	// timestampRe matches a leading "HH:MM:SS" label on a completion line.
	timestampRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})`)
	// linkRe matches bare http(s) URLs anywhere in a line.
	linkRe = regexp.MustCompile(`https?://\S+`)
)

// MakeLinksClickable wraps every bare URL in an anchor tag. Leftmost,
// non-overlapping, greedy: the same substitution the completion output
// and comment text get before paragraph wrapping.
func MakeLinksClickable(text string) string {
	return linkRe.ReplaceAllString(text, `<a href="$0" target="_blank">$0</a>`)
}

func imageHTML(url, alt string) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" class="blog-image"/>`, url, alt)
}

// storyboardThumbnail returns the YouTube storyboard frame closest to the
// given offset. Frames are published at ten-second granularity.
func storyboardThumbnail(videoID string, seconds int) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%d.jpg", videoID, seconds/10)
}

// FormatBody walks the completion output line by line and emits HTML.
// Classification is first match wins:
//
//  1. "Title:" lines are dropped (the title is rendered in the header).
//  2. introduction/conclusion lines become emphasized h2 headings.
//  3. markdown heading lines become emphasized h3 headings, markers stripped.
//  4. lines opening with HH:MM:SS get a storyboard thumbnail plus a
//     linkified paragraph.
//  5. blank lines become <br>, never an empty paragraph.
//  6. everything else is a linkified paragraph.
func FormatBody(completion string, meta model.VideoMetadata) string {
	var b strings.Builder

	for _, line := range strings.Split(completion, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(line, "Title:"):
			continue
		case strings.HasPrefix(lower, "introduction") || strings.HasPrefix(lower, "conclusion"):
			b.WriteString("<h2><strong>" + line + "</strong></h2>")
		case strings.HasPrefix(line, "#"):
			heading := strings.TrimSpace(strings.Trim(line, "#"))
			b.WriteString("<h3><strong>" + heading + "</strong></h3>")
		case timestampRe.MatchString(line):
			m := timestampRe.FindStringSubmatch(line)
			h, _ := strconv.Atoi(m[1])
			mm, _ := strconv.Atoi(m[2])
			s, _ := strconv.Atoi(m[3])
			seconds := h*3600 + mm*60 + s
			thumb := storyboardThumbnail(meta.VideoID, seconds)
			b.WriteString(fmt.Sprintf(`<img src="%s" alt="Video thumbnail at %s" style="width: 320px; height: 180px; object-fit: cover;">`, thumb, m[0]))
			b.WriteString("<p>" + MakeLinksClickable(line) + "</p>")
		case strings.TrimSpace(line) == "":
			b.WriteString("<br>")
		default:
			b.WriteString("<p>" + MakeLinksClickable(line) + "</p>")
		}
	}

	return b.String()
}

// headerHTML renders the fixed post header: title, publish/stat meta
// line, and the hero thumbnail.
func headerHTML(meta model.VideoMetadata) string {
	var b strings.Builder
	b.WriteString("<h1>" + meta.Title + "</h1>")
	b.WriteString(fmt.Sprintf("<div class='blog-meta'>Published on %s | %d views | %d likes</div>",
		meta.PublishedAt.Format("2006-01-02"), meta.ViewCount, meta.LikeCount))
	b.WriteString(imageHTML(meta.ThumbnailURL, meta.Title))
	return b.String()
}

// BuildDocument assembles the final post in fixed section order:
// header, chapters, body, products, comments. Empty sections are
// skipped entirely.
func BuildDocument(meta model.VideoMetadata, bodyHTML string, chapters []model.Chapter, products []model.ProductLink, comments []model.Comment) string {
	var b strings.Builder

	b.WriteString(headerHTML(meta))

	if len(chapters) > 0 {
		b.WriteString(`<div class="chapters"><h3><strong>Chapters</strong></h3><ul>`)
		for _, ch := range chapters {
			b.WriteString("<li>" + ch.Timestamp + " " + ch.Title + "</li>")
		}
		b.WriteString("</ul></div>")
	}

	b.WriteString(bodyHTML)

	if len(products) > 0 {
		b.WriteString(`<div class="products"><h3><strong>Tools &amp; Products Mentioned</strong></h3><ul>`)
		for _, p := range products {
			b.WriteString(fmt.Sprintf(`<li>%s: <a href="%s" target="_blank">%s</a></li>`, p.Name, p.URL, p.URL))
		}
		b.WriteString("</ul></div>")
	}

	if len(comments) > 0 {
		b.WriteString(`<div class="comments"><h3><strong>Comments</strong></h3>`)
		for _, c := range comments {
			b.WriteString(fmt.Sprintf(`<div class="comment"><span class="comment-author">%s</span> (%d likes)<p>%s</p></div>`,
				c.Author, c.LikeCount, MakeLinksClickable(c.Text)))
		}
		b.WriteString("</div>")
	}

	return b.String()
}
