package xwgrid

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// wordRow mirrors one row of the cloud word table.
type wordRow struct {
	Text       string              `bigquery:"text"`
	Clue       string              `bigquery:"clue"`
	Category   bigquery.NullString `bigquery:"category"`
	Difficulty bigquery.NullInt64  `bigquery:"difficulty"`
}

// LoadWordsFromCloud reads the word table from BigQuery into a catalog.
// An empty category loads every row; maxLen bounds word length so grids
// never pull words they cannot place.
func LoadWordsFromCloud(ctx context.Context, projectID, table, category string, maxLen int) (*Catalog, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery client: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf(
		"SELECT text, clue, category, difficulty FROM `%s`"+
			" WHERE CHAR_LENGTH(text) BETWEEN 2 AND @maxLen"+
			" AND (@category = '' OR LOWER(category) = LOWER(@category))"+
			" ORDER BY text", table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "maxLen", Value: maxLen},
		{Name: "category", Value: category},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query word table: %w", err)
	}

	cat := NewCatalog()
	for {
		var row wordRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read word table: %w", err)
		}
		cat.Add(Entry{
			Text:       row.Text,
			Clue:       row.Clue,
			Category:   row.Category.StringVal,
			Difficulty: int(row.Difficulty.Int64),
		})
	}
	return cat, nil
}
