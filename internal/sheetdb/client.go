package sheetdb

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store is the narrow surface the rest of the application needs from the
// remote spreadsheet: whole-table reads and single-row appends. There are no
// updates, deletes, transactions, or retries.
type Store interface {
	ReadTable(ctx context.Context, name string) (Table, error)
	AppendRow(ctx context.Context, name string, cells []string) error
}

// Client talks to a single Google spreadsheet through the Sheets API. The
// client is built once at startup and reused for the process lifetime; table
// contents are never cached across calls.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets API client from a service-account credentials
// file. A connect or auth failure here is fatal for the session.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheetdb: create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Ping verifies the spreadsheet is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheetdb: ping spreadsheet %s: %w", c.spreadsheetID, err)
	}
	return nil
}

// ReadTable loads a whole worksheet. The first row is the header; a sheet
// with fewer than two rows yields an empty table, not an error.
func (c *Client) ReadTable(ctx context.Context, name string) (Table, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		return Table{}, fmt.Errorf("sheetdb: read worksheet %s: %w", name, err)
	}
	if len(resp.Values) < 2 {
		return Table{Name: name}, nil
	}
	headers := toStrings(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, toStrings(raw))
	}
	return Table{Name: name, Headers: headers, Rows: rows}, nil
}

// AppendRow appends a single row below the worksheet's current data. The
// caller gets the raw error back; there is no retry and no rollback.
func (c *Client) AppendRow(ctx context.Context, name string, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, name, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheetdb: append to worksheet %s: %w", name, err)
	}
	return nil
}

func toStrings(raw []interface{}) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
