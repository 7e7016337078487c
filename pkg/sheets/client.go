package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"

// ErrUnauthorized marks credential failures against the Sheets API so
// callers can classify them without importing googleapi.
var ErrUnauthorized = errors.New("sheets: unauthorized")

// WorksheetError reports that the expected worksheet could not be resolved.
// Available carries the titles that do exist, for diagnostics; it never
// contains credential material.
type WorksheetError struct {
	SpreadsheetID string
	Available     []string
}

func (e *WorksheetError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("spreadsheet %s has no worksheets", e.SpreadsheetID)
	}
	return fmt.Sprintf("order worksheet not found in spreadsheet %s (available: %s)",
		e.SpreadsheetID, strings.Join(e.Available, ", "))
}

type Config struct {
	ServiceAccountEmail string
	// PrivateKey is the PEM key material. Literal `\n` escape sequences, as
	// they arrive from single-line env files, are unescaped before use.
	PrivateKey    string
	SpreadsheetID string
	Timeout       time.Duration
}

// Client wraps the Sheets API for a single spreadsheet. Orders always go to
// the first worksheet by position.
type Client struct {
	spreadsheetID string
	svc           *sheets.Service

	// resolved lazily by Metadata
	sheetTitle string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(normalizePrivateKey(cfg.PrivateKey)),
		Scopes:     []string{scopeSpreadsheets},
		TokenURL:   google.JWTTokenURL,
	}

	httpClient := conf.Client(ctx)
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{spreadsheetID: cfg.SpreadsheetID, svc: svc}, nil
}

// Metadata loads the spreadsheet metadata and resolves the order worksheet
// (first sheet by position). The resolved title is remembered for appends.
func (c *Client) Metadata(ctx context.Context) error {
	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return classify(err)
	}

	if len(doc.Sheets) == 0 || doc.Sheets[0].Properties == nil {
		titles := make([]string, 0, len(doc.Sheets))
		for _, s := range doc.Sheets {
			if s.Properties != nil {
				titles = append(titles, s.Properties.Title)
			}
		}
		return &WorksheetError{SpreadsheetID: c.spreadsheetID, Available: titles}
	}

	c.sheetTitle = doc.Sheets[0].Properties.Title
	return nil
}

// Append writes one row to the end of the order worksheet, writing the
// header row first if the sheet is still empty. Metadata must have been
// called on this client before.
func (c *Client) Append(ctx context.Context, header []string, row []interface{}) error {
	if c.sheetTitle == "" {
		return fmt.Errorf("worksheet not resolved, call Metadata first")
	}

	headerRange := fmt.Sprintf("'%s'!A1:F1", c.sheetTitle)
	existing, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return classify(err)
	}
	if len(existing.Values) == 0 {
		headerRow := make([]interface{}, len(header))
		for i, h := range header {
			headerRow[i] = h
		}
		if err := c.appendValues(ctx, headerRow); err != nil {
			return err
		}
	}

	return c.appendValues(ctx, row)
}

func (c *Client) appendValues(ctx context.Context, row []interface{}) error {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("'%s'!A1", c.sheetTitle), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return fmt.Errorf("sheets request failed: %w", err)
}

// normalizePrivateKey turns the single-line env representation of a PEM key
// (literal \n sequences) back into real newlines.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
