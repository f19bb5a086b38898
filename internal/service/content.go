package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fitposture/fitposture/internal/markdown"
	"github.com/fitposture/fitposture/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentService serves markdown articles and course pages from the content
// directory. Files are re-read per request; the OS page cache makes this
// cheap at our traffic.
type ContentService struct {
	parser      *markdown.Parser
	contentPath string
	titleCaser  cases.Caser
}

func NewContentService(contentPath string) *ContentService {
	return &ContentService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		titleCaser:  cases.Title(language.English),
	}
}

func (s *ContentService) Posts() ([]*model.BlogPost, error) {
	pattern := filepath.Join(s.contentPath, "blog", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var posts []*model.BlogPost
	for _, file := range files {
		post, err := s.Post(strings.TrimSuffix(filepath.Base(file), ".md"))
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, nil
}

func (s *ContentService) Post(slug string) (*model.BlogPost, error) {
	path := filepath.Join(s.contentPath, "blog", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blog post not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	post := &model.BlogPost{
		Slug:        slug,
		Title:       s.titleFromSlug(slug),
		HTMLContent: string(htmlContent),
		Content:     string(content),
	}

	if title, ok := meta["title"].(string); ok {
		post.Title = title
	}
	if author, ok := meta["author"].(string); ok {
		post.Author = author
	}
	if description, ok := meta["description"].(string); ok {
		post.Description = description
	}
	if dateStr, ok := meta["date"].(string); ok {
		if date, err := time.Parse("2006-01-02", dateStr); err == nil {
			post.Date = date
		}
	}
	if tags, ok := meta["tags"].([]any); ok {
		for _, tag := range tags {
			if tagStr, ok := tag.(string); ok {
				post.Tags = append(post.Tags, tagStr)
			}
		}
	}
	if heroImage, ok := meta["hero_image"].(string); ok {
		post.HeroImage = heroImage
	}

	post.ReadTime = s.calculateReadTime(string(content))

	return post, nil
}

func (s *ContentService) PostsByTag(tag string) ([]*model.BlogPost, error) {
	allPosts, err := s.Posts()
	if err != nil {
		return nil, err
	}

	var posts []*model.BlogPost
	for _, post := range allPosts {
		for _, postTag := range post.Tags {
			if strings.EqualFold(postTag, tag) {
				posts = append(posts, post)
				break
			}
		}
	}

	return posts, nil
}

func (s *ContentService) Courses() ([]*model.Course, error) {
	pattern := filepath.Join(s.contentPath, "courses", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var courses []*model.Course
	for _, file := range files {
		course, err := s.Course(strings.TrimSuffix(filepath.Base(file), ".md"))
		if err != nil {
			continue
		}
		courses = append(courses, course)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Date.After(courses[j].Date)
	})

	return courses, nil
}

func (s *ContentService) Course(slug string) (*model.Course, error) {
	path := filepath.Join(s.contentPath, "courses", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("course not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Slug:        slug,
		Title:       s.titleFromSlug(slug),
		HTMLContent: string(htmlContent),
	}

	if title, ok := meta["title"].(string); ok {
		course.Title = title
	}
	if description, ok := meta["description"].(string); ok {
		course.Description = description
	}
	if level, ok := meta["level"].(string); ok {
		course.Level = level
	}
	if duration, ok := meta["duration"].(string); ok {
		course.Duration = duration
	}
	if priceCents, ok := meta["price_cents"].(int); ok {
		course.PriceCents = priceCents
	}
	if dateStr, ok := meta["date"].(string); ok {
		if date, err := time.Parse("2006-01-02", dateStr); err == nil {
			course.Date = date
		}
	}
	if heroImage, ok := meta["hero_image"].(string); ok {
		course.HeroImage = heroImage
	}

	return course, nil
}

// titleFromSlug is the fallback when frontmatter carries no title.
func (s *ContentService) titleFromSlug(slug string) string {
	return s.titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

func (s *ContentService) calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
