package expense

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/xuri/excelize/v2"
	hrcore "hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/infrastructure/communication"
	"hrdesk.co.kr/hrdesk/utils"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	ErrTemplateNotFound = errors.New("expense template not found")
	ErrInvalidRequest   = errors.New("invalid expense request")
)

// TemplateNotFoundError reports where the template was looked up.
type TemplateNotFoundError struct {
	Name     string
	Location string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template file '%s' not found at %s", e.Name, e.Location)
}

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

type DistanceCalculator interface {
	TollDistance(ctx context.Context, origin, destination string) string
}

type ObjectReader interface {
	Read(ctx context.Context, key string, w io.Writer) error
}

type ObjectWriter interface {
	Write(ctx context.Context, key string, r io.Reader, contentType string) error
}

type Mailer interface {
	Send(ctx context.Context, info *communication.EmailInfo) error
}

// Request carries the expense claim form.
type Request struct {
	UserID      string
	TripDate    string `form:"trip_date" json:"trip_date"`
	Location    string `form:"location" json:"location"`
	Origin      string `form:"origin" json:"origin"`
	Destination string `form:"destination" json:"destination"`
	CarNumber   string `form:"car_number" json:"car_number"`
	Purpose     string `form:"purpose" json:"purpose"`
	TollFee     string `form:"toll_fee" json:"toll_fee"`
}

type Report struct {
	Filename string
	Path     string
	Distance float64
	TollFee  float64
}

type Generator struct {
	distance     DistanceCalculator
	templatePath string
	outputDir    string
	templates    ObjectReader
	archive      ObjectWriter
	mailer       Mailer
	mailSender   string
	directory    *hrcore.Directory
}

type Option func(*Generator)

// WithTemplateBucket reads the template from object storage, keyed by the template path.
func WithTemplateBucket(r ObjectReader) Option {
	return func(g *Generator) { g.templates = r }
}

func WithArchive(w ObjectWriter) Option {
	return func(g *Generator) { g.archive = w }
}

// WithMailer sends each report to the requesting user's registered address.
func WithMailer(m Mailer, sender string, directory *hrcore.Directory) Option {
	return func(g *Generator) {
		g.mailer = m
		g.mailSender = sender
		g.directory = directory
	}
}

func NewGenerator(distance DistanceCalculator, templatePath, outputDir string, opts ...Option) *Generator {
	g := &Generator{distance: distance, templatePath: templatePath, outputDir: outputDir}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func Filename(userID, tripDate string) string {
	return fmt.Sprintf("expense_report_%s_%s.xlsx", userID, tripDate)
}

// amount accepts plain signed decimals only; anything else is 0.
func amount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.Trim(s, "0123456789.-") != "" {
		return 0
	}
	return utils.ParseFloatOrZero(s)
}

func distanceValue(result string) float64 {
	if !strings.Contains(result, "km") {
		return 0
	}
	return amount(strings.TrimSpace(strings.ReplaceAll(result, "km", "")))
}

// Generate fills the template with the claim, saves it in the output
// directory and returns where it was written.
func (g *Generator) Generate(ctx context.Context, req Request) (*Report, error) {
	if _, err := time.Parse(utils.DateLayout, req.TripDate); err != nil {
		return nil, fmt.Errorf("%w: trip_date %q is not YYYY-MM-DD", ErrInvalidRequest, req.TripDate)
	}
	filename := Filename(req.UserID, req.TripDate)
	if filepath.Base(filename) != filename {
		return nil, fmt.Errorf("%w: user id %q", ErrInvalidRequest, req.UserID)
	}

	report := &Report{
		Filename: filename,
		TollFee:  amount(req.TollFee),
		Distance: distanceValue(g.distance.TollDistance(ctx, req.Origin, req.Destination)),
	}

	f, err := g.openTemplate(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	cells := []struct {
		cell  string
		value interface{}
	}{
		{"C10", req.TripDate},
		{"C11", req.Location},
		{"C12", "차량"},
		{"C13", req.CarNumber},
		{"B17", req.Purpose},
		{"C28", req.Origin},
		{"E28", req.Destination},
		{"G28", report.TollFee},
		{"I28", report.Distance},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c.cell, c.value); err != nil {
			return nil, fmt.Errorf("set %s: %w", c.cell, err)
		}
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	report.Path = filepath.Join(g.outputDir, report.Filename)
	if err := f.SaveAs(report.Path); err != nil {
		return nil, fmt.Errorf("save %s: %w", report.Path, err)
	}
	fmt.Printf("[INFO] expense report saved at %s\n", report.Path)

	g.archiveReport(ctx, report)
	g.mailReport(ctx, req.UserID, report)
	return report, nil
}

func (g *Generator) openTemplate(ctx context.Context) (*excelize.File, error) {
	name := filepath.Base(g.templatePath)

	if g.templates != nil {
		var buf bytes.Buffer
		if err := g.templates.Read(ctx, g.templatePath, &buf); err != nil {
			var noSuchKey *s3types.NoSuchKey
			if errors.As(err, &noSuchKey) {
				return nil, &TemplateNotFoundError{Name: name, Location: g.templatePath}
			}
			return nil, fmt.Errorf("read template: %w", err)
		}
		return excelize.OpenReader(&buf)
	}

	if _, err := os.Stat(g.templatePath); errors.Is(err, os.ErrNotExist) {
		location := g.templatePath
		if abs, err := filepath.Abs(location); err == nil {
			location = abs
		}
		return nil, &TemplateNotFoundError{Name: name, Location: location}
	}
	return excelize.OpenFile(g.templatePath)
}

// archiveReport and mailReport are best effort: the report is already on disk.
func (g *Generator) archiveReport(ctx context.Context, report *Report) {
	if g.archive == nil {
		return
	}
	file, err := os.Open(report.Path)
	if err != nil {
		fmt.Printf("[ERROR] archive %s: %v\n", report.Filename, err)
		return
	}
	defer file.Close()

	if err := g.archive.Write(ctx, report.Filename, file, ContentType); err != nil {
		fmt.Printf("[ERROR] archive %s: %v\n", report.Filename, err)
	}
}

func (g *Generator) mailReport(ctx context.Context, userID string, report *Report) {
	if g.mailer == nil || g.directory == nil || g.mailSender == "" {
		return
	}
	user, err := g.directory.Find(userID)
	if err != nil || user == nil || user.Email == "" {
		return
	}

	content, err := os.ReadFile(report.Path)
	if err != nil {
		fmt.Printf("[ERROR] mail %s: %v\n", report.Filename, err)
		return
	}

	err = g.mailer.Send(ctx, &communication.EmailInfo{
		From:    g.mailSender,
		To:      []string{user.Email},
		Subject: "출장 여비 정산서 " + report.Filename,
		Text:    fmt.Sprintf("%s님의 출장 여비 정산서를 첨부합니다.", user.Name),
		Attachments: []communication.Attachment{{
			Filename:    report.Filename,
			ContentType: ContentType,
			Content:     content,
		}},
	})
	if err != nil {
		fmt.Printf("[ERROR] mail %s to %s: %v\n", report.Filename, user.Email, err)
	}
}
