package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/internal/cli/format"
	"github.com/longkey1/notiongo/notion"
	"github.com/spf13/cobra"
)

type queryOptions struct {
	pageSize int
	format   string
	cursor   string
	sort     string
	all      bool
	filters  []string
}

var queryOpts = &queryOptions{}

var queryCmd = &cobra.Command{
	Use:   "query <data_source_id>",
	Short: "Query pages in a data source",
	Long: `Query a data source for pages, optionally filtered and sorted.

Filters use property:type:operator:value shorthand, for example:

  notiongo query <id> --filter "Status:select:equals:Done"
  notiongo query <id> --filter "Estimate:number:greater_than:3" --filter "Done:checkbox:equals:false"

Multiple --filter flags are combined with AND.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd.Context(), args[0], queryOpts)
	},
}

func init() {
	queryCmd.Flags().IntVarP(&queryOpts.pageSize, "page-size", "n", 10, "Number of results to retrieve (max 100)")
	queryCmd.Flags().StringVarP(&queryOpts.format, "format", "f", "table", "Output format: json, text, table")
	queryCmd.Flags().StringVar(&queryOpts.cursor, "cursor", "", "Pagination cursor")
	queryCmd.Flags().StringVar(&queryOpts.sort, "sort", "", "Sort as property:direction (e.g. Due:ascending)")
	queryCmd.Flags().BoolVar(&queryOpts.all, "all", false, "Fetch every page of results")
	queryCmd.Flags().StringArrayVar(&queryOpts.filters, "filter", nil, "Filter as property:type:operator:value (repeatable)")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(ctx context.Context, dataSourceID string, opts *queryOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := cfg.NewClient()

	req := &notion.QueryRequest{
		StartCursor: opts.cursor,
		PageSize:    opts.pageSize,
	}

	filter, err := parseFilters(opts.filters)
	if err != nil {
		return err
	}
	req.Filter = filter

	if opts.sort != "" {
		sort, err := parseSort(opts.sort)
		if err != nil {
			return err
		}
		req.Sorts = []notion.Sort{sort}
	}

	formatter := format.NewFormatter(format.OutputFormat(opts.format), os.Stdout)

	if opts.all {
		pages, err := client.QueryAll(ctx, dataSourceID, req)
		if err != nil {
			return fmt.Errorf("failed to query data source: %w", err)
		}
		return formatter.FormatPages(pages, "", false)
	}

	result, err := client.QueryDataSource(ctx, dataSourceID, req)
	if err != nil {
		return fmt.Errorf("failed to query data source: %w", err)
	}
	return formatter.FormatPages(result.Results, result.NextCursor, result.HasMore)
}

// parseFilters turns property:type:operator:value shorthands into a filter
// expression, ANDing multiple flags together.
func parseFilters(specs []string) (*notion.Filter, error) {
	var filters []notion.Filter
	for _, spec := range specs {
		f, err := parseFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return &filters[0], nil
	default:
		combined := notion.And(filters...)
		return &combined, nil
	}
}

// textFilter is satisfied by both title and rich text filter builders.
type textFilter interface {
	Equals(string) notion.Filter
	Contains(string) notion.Filter
	DoesNotContain(string) notion.Filter
	StartsWith(string) notion.Filter
	EndsWith(string) notion.Filter
	IsEmpty() notion.Filter
	IsNotEmpty() notion.Filter
}

// optionFilter is satisfied by both select and status filter builders.
type optionFilter interface {
	Equals(string) notion.Filter
	DoesNotEqual(string) notion.Filter
	IsEmpty() notion.Filter
	IsNotEmpty() notion.Filter
}

func parseFilter(spec string) (notion.Filter, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return notion.Filter{}, fmt.Errorf("invalid filter %q (want property:type:operator[:value])", spec)
	}
	property, typ, operator := parts[0], parts[1], parts[2]
	value := ""
	if len(parts) == 4 {
		value = parts[3]
	}

	switch typ {
	case "title":
		return parseTextFilter(notion.Title(property), operator, value)
	case "rich_text":
		return parseTextFilter(notion.RichTextProp(property), operator, value)
	case "number":
		return parseNumberFilter(property, operator, value)
	case "checkbox":
		return notion.Checkbox(property).Equals(value == "true"), nil
	case "select":
		return parseOptionFilter(notion.Select(property), operator, value)
	case "status":
		return parseOptionFilter(notion.Status(property), operator, value)
	case "multi_select":
		return parseMultiSelectFilter(property, operator, value)
	case "date":
		return parseDateFilter(property, operator, value)
	default:
		return notion.Filter{}, fmt.Errorf("unsupported filter type %q", typ)
	}
}

func parseTextFilter(b textFilter, operator, value string) (notion.Filter, error) {
	switch operator {
	case "equals":
		return b.Equals(value), nil
	case "contains":
		return b.Contains(value), nil
	case "does_not_contain":
		return b.DoesNotContain(value), nil
	case "starts_with":
		return b.StartsWith(value), nil
	case "ends_with":
		return b.EndsWith(value), nil
	case "is_empty":
		return b.IsEmpty(), nil
	case "is_not_empty":
		return b.IsNotEmpty(), nil
	default:
		return notion.Filter{}, fmt.Errorf("unsupported text operator %q", operator)
	}
}

func parseNumberFilter(property, operator, value string) (notion.Filter, error) {
	b := notion.Number(property)
	switch operator {
	case "is_empty":
		return b.IsEmpty(), nil
	case "is_not_empty":
		return b.IsNotEmpty(), nil
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return notion.Filter{}, fmt.Errorf("invalid number %q: %w", value, err)
	}
	switch operator {
	case "equals":
		return b.Equals(n), nil
	case "does_not_equal":
		return b.DoesNotEqual(n), nil
	case "greater_than":
		return b.GreaterThan(n), nil
	case "less_than":
		return b.LessThan(n), nil
	case "greater_than_or_equal_to":
		return b.GreaterThanOrEqualTo(n), nil
	case "less_than_or_equal_to":
		return b.LessThanOrEqualTo(n), nil
	default:
		return notion.Filter{}, fmt.Errorf("unsupported number operator %q", operator)
	}
}

func parseOptionFilter(b optionFilter, operator, value string) (notion.Filter, error) {
	switch operator {
	case "equals":
		return b.Equals(value), nil
	case "does_not_equal":
		return b.DoesNotEqual(value), nil
	case "is_empty":
		return b.IsEmpty(), nil
	case "is_not_empty":
		return b.IsNotEmpty(), nil
	default:
		return notion.Filter{}, fmt.Errorf("unsupported select operator %q", operator)
	}
}

func parseMultiSelectFilter(property, operator, value string) (notion.Filter, error) {
	b := notion.MultiSelect(property)
	switch operator {
	case "contains":
		return b.Contains(value), nil
	case "does_not_contain":
		return b.DoesNotContain(value), nil
	case "is_empty":
		return b.IsEmpty(), nil
	case "is_not_empty":
		return b.IsNotEmpty(), nil
	default:
		return notion.Filter{}, fmt.Errorf("unsupported multi_select operator %q", operator)
	}
}

func parseDateFilter(property, operator, value string) (notion.Filter, error) {
	b := notion.DateProp(property)
	switch operator {
	case "equals":
		return b.Equals(value), nil
	case "before":
		return b.Before(value), nil
	case "after":
		return b.After(value), nil
	case "on_or_before":
		return b.OnOrBefore(value), nil
	case "on_or_after":
		return b.OnOrAfter(value), nil
	case "past_week":
		return b.PastWeek(), nil
	case "past_month":
		return b.PastMonth(), nil
	case "past_year":
		return b.PastYear(), nil
	case "next_week":
		return b.NextWeek(), nil
	case "next_month":
		return b.NextMonth(), nil
	case "next_year":
		return b.NextYear(), nil
	case "is_empty":
		return b.IsEmpty(), nil
	case "is_not_empty":
		return b.IsNotEmpty(), nil
	default:
		return notion.Filter{}, fmt.Errorf("unsupported date operator %q", operator)
	}
}

func parseSort(spec string) (notion.Sort, error) {
	property, direction, found := strings.Cut(spec, ":")
	if !found {
		direction = string(notion.SortAscending)
	}
	switch notion.SortDirection(direction) {
	case notion.SortAscending, notion.SortDescending:
	default:
		return notion.Sort{}, fmt.Errorf("invalid sort direction %q", direction)
	}
	return notion.SortBy(property, notion.SortDirection(direction)), nil
}
