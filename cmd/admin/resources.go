package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/admin-nexus/internal/client"
	"github.com/admin-nexus/internal/export"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/page"

	"github.com/spf13/cobra"
)

// capability 资源支持的操作
type capability uint8

const (
	capGet capability = 1 << iota
	capCreate
	capUpdate
	capDelete
	capStatus
	capUserScoped

	capCRUD = capGet | capCreate | capUpdate | capDelete
)

type resourceDef[T any] struct {
	name       string
	pick       func(*client.API) *client.Resource[T]
	caps       capability
	remote     bool
	dateFields []string
	defaults   page.Form
	columns    []export.Column[T]
}

func resourceCommands(api func() *client.API) []*cobra.Command {
	return []*cobra.Command{
		newResourceCommand(api, resourceDef[models.User]{
			name: "users", pick: func(a *client.API) *client.Resource[models.User] { return a.Users },
			caps: capCRUD, remote: true, defaults: page.Form{"tier": "bronze"},
			dateFields: []string{"last_activity_date"}, columns: export.UserColumns,
		}),
		newResourceCommand(api, resourceDef[models.Category]{
			name: "categories", pick: func(a *client.API) *client.Resource[models.Category] { return a.Categories },
			caps: capCRUD, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.Category]("id", "name", "slug", "is_active", "sort_order"),
		}),
		newResourceCommand(api, resourceDef[models.Product]{
			name: "products", pick: func(a *client.API) *client.Resource[models.Product] { return a.Products },
			caps: capCRUD, remote: true, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.Product]("id", "name", "category_id", "commission_rate", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.Course]{
			name: "courses", pick: func(a *client.API) *client.Resource[models.Course] { return a.Courses },
			caps: capCRUD, defaults: page.Form{"difficulty_level": "beginner", "is_active": true},
			columns: fieldColumns[models.Course]("id", "title", "difficulty_level", "xp_reward", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.Reward]{
			name: "rewards", pick: func(a *client.API) *client.Resource[models.Reward] { return a.Rewards },
			caps: capCRUD, defaults: page.Form{"tier": "bronze", "is_active": true},
			columns: fieldColumns[models.Reward]("id", "name", "tier", "xp_required", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.Announcement]{
			name: "announcements", pick: func(a *client.API) *client.Resource[models.Announcement] { return a.Announcements },
			caps: capCRUD, dateFields: []string{"start_date", "end_date"},
			defaults: page.Form{"type": "info", "priority": 1, "is_active": true},
			columns:  fieldColumns[models.Announcement]("id", "title", "type", "priority", "start_date", "end_date", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.Testimonial]{
			name: "testimonials", pick: func(a *client.API) *client.Resource[models.Testimonial] { return a.Testimonials },
			caps: capCRUD, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.Testimonial]("id", "name", "tier", "earnings_label", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.Referral]{
			name: "referrals", pick: func(a *client.API) *client.Resource[models.Referral] { return a.Referrals },
			caps:    capStatus | capUserScoped,
			columns: fieldColumns[models.Referral]("id", "referrer_id", "referred_email", "status", "bonus_earned"),
		}),
		newResourceCommand(api, resourceDef[models.Transaction]{
			name: "transactions", pick: func(a *client.API) *client.Resource[models.Transaction] { return a.Transactions },
			caps: capCreate | capStatus | capUserScoped, defaults: page.Form{"status": "pending"},
			columns: fieldColumns[models.Transaction]("id", "user_id", "type", "amount", "status"),
		}),
		newResourceCommand(api, resourceDef[models.UserActivity]{
			name: "activities", pick: func(a *client.API) *client.Resource[models.UserActivity] { return a.Activities },
			caps:    capUserScoped,
			columns: fieldColumns[models.UserActivity]("id", "user_id", "activity_type", "xp_earned", "created_at"),
		}),
		newResourceCommand(api, resourceDef[models.Notification]{
			name: "notifications", pick: func(a *client.API) *client.Resource[models.Notification] { return a.Notifications },
			caps:    capDelete | capUserScoped,
			columns: fieldColumns[models.Notification]("id", "user_id", "title", "type", "is_read"),
		}),
		newResourceCommand(api, resourceDef[models.WaitlistEntry]{
			name: "waitlist", pick: func(a *client.API) *client.Resource[models.WaitlistEntry] { return a.Waitlist },
			caps: capCRUD | capStatus, defaults: page.Form{"status": "pending"},
			columns: export.WaitlistColumns,
		}),
		newResourceCommand(api, resourceDef[models.ProductCategory]{
			name: "product-categories", pick: func(a *client.API) *client.Resource[models.ProductCategory] { return a.ProductCategories },
			caps:    capDelete,
			columns: fieldColumns[models.ProductCategory]("id", "product_id", "category_id", "is_primary"),
		}),
		newResourceCommand(api, resourceDef[models.ProductReview]{
			name: "product-reviews", pick: func(a *client.API) *client.Resource[models.ProductReview] { return a.ProductReviews },
			caps:    capCreate | capUpdate | capDelete,
			columns: fieldColumns[models.ProductReview]("id", "product_id", "user_id", "rating", "is_approved"),
		}),
		newResourceCommand(api, resourceDef[models.TimelineStep]{
			name: "timeline-steps", pick: func(a *client.API) *client.Resource[models.TimelineStep] { return a.TimelineSteps },
			caps: capCreate | capUpdate | capDelete, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.TimelineStep]("id", "title", "sort_order", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.TrustBadge]{
			name: "trust-badges", pick: func(a *client.API) *client.Resource[models.TrustBadge] { return a.TrustBadges },
			caps: capCreate | capUpdate | capDelete, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.TrustBadge]("id", "title", "sort_order", "is_active"),
		}),
		newResourceCommand(api, resourceDef[models.NavigationItem]{
			name: "navigation-items", pick: func(a *client.API) *client.Resource[models.NavigationItem] { return a.NavigationItems },
			caps: capCreate | capUpdate | capDelete, defaults: page.Form{"is_active": true},
			columns: fieldColumns[models.NavigationItem]("id", "label", "href", "sort_order", "is_active"),
		}),
	}
}

// userScopedSource 将 List 限定到 /user/:id
type userScopedSource[T any] struct {
	*client.Resource[T]
	userID string
}

func (s userScopedSource[T]) List(ctx context.Context) ([]T, error) {
	return s.ListAt(ctx, "/user/"+url.PathEscape(s.userID), nil)
}

func newResourceCommand[T any](api func() *client.API, def resourceDef[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   def.name,
		Short: fmt.Sprintf("Manage %s", def.name),
	}

	var userID string
	buildPage := func() (*page.Page[T], *client.Resource[T]) {
		res := def.pick(api())
		var src page.Source[T] = res
		if userID != "" {
			src = userScopedSource[T]{Resource: res, userID: userID}
		}
		mode := page.SearchLocal
		if def.remote && userID == "" {
			mode = page.SearchRemote
		}
		filters := make(map[string]page.FilterFunc[T], len(filterPairs))
		for field := range filterPairs {
			filters[field] = fieldEquals[T](field)
		}
		p := page.New[T](src, page.Options[T]{
			Resource:     def.name,
			ID:           jsonID[T],
			Matches:      jsonContains[T],
			Filters:      filters,
			Mode:         mode,
			ItemsPerPage: perPage,
			DateFields:   def.dateFields,
			Defaults:     def.defaults,
			Columns:      def.columns,
			Confirm:      confirm,
			Notify:       printToast,
		})
		return p, res
	}
	// prepare 加载并应用搜索、过滤
	prepare := func(ctx context.Context) (*page.Page[T], error) {
		p, _ := buildPage()
		if err := p.Load(ctx); err != nil {
			return nil, err
		}
		if searchTerm != "" {
			p.SetSearch(ctx, searchTerm)
			if def.remote && userID == "" {
				if err := p.SearchNow(ctx); err != nil {
					return nil, err
				}
			}
		}
		for field, value := range filterPairs {
			p.SetFilter(field, value)
		}
		return p, nil
	}
	addQueryFlags := func(c *cobra.Command) {
		c.Flags().StringVarP(&searchTerm, "search", "s", "", "Search term")
		c.Flags().StringToStringVar(&filterPairs, "filter", nil, "Field filters, e.g. --filter tier=gold")
		if def.caps&capUserScoped != 0 {
			c.Flags().StringVar(&userID, "user", "", "Only records of this user")
		}
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", def.name),
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := prepare(c.Context())
			if err != nil {
				return err
			}
			p.SetPage(pageNumber)
			if err := printItems(p.Visible(), def.columns); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "page %d/%d, %d matching\n", p.CurrentPage(), maxInt(p.PageCount(), 1), len(p.Filtered()))
			return nil
		},
	}
	addQueryFlags(list)
	list.Flags().IntVar(&pageNumber, "page", 1, "Page number")
	list.Flags().IntVar(&perPage, "per-page", 10, "Items per page")
	cmd.AddCommand(list)

	var format, out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: fmt.Sprintf("Export filtered %s to CSV or XLSX", def.name),
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := prepare(c.Context())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			name, err := p.Export(&buf, format)
			if err != nil {
				return err
			}
			if out == "" {
				out = name
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", out)
			return nil
		},
	}
	addQueryFlags(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "csv or xlsx")
	exportCmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default <resource>-<date>.<format>)")
	cmd.AddCommand(exportCmd)

	if def.caps&capGet != 0 {
		cmd.AddCommand(&cobra.Command{
			Use:   "get <id>",
			Short: "Show one record",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				item, err := def.pick(api()).Get(c.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(item)
			},
		})
	}

	var data string
	if def.caps&capCreate != 0 {
		create := &cobra.Command{
			Use:   "create",
			Short: "Create a record from --data JSON",
			RunE: func(c *cobra.Command, _ []string) error {
				fields, err := parseData(data)
				if err != nil {
					return err
				}
				p, _ := buildPage()
				p.OpenCreate()
				for k, v := range fields {
					p.SetField(k, v)
				}
				item, err := p.Submit(c.Context())
				if err != nil {
					return err
				}
				return printJSON(item)
			},
		}
		create.Flags().StringVarP(&data, "data", "d", "{}", "JSON object of fields")
		cmd.AddCommand(create)
	}

	if def.caps&capUpdate != 0 {
		update := &cobra.Command{
			Use:   "update <id>",
			Short: "Update fields of a record from --data JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				fields, err := parseData(data)
				if err != nil {
					return err
				}
				p, _ := buildPage()
				if err := p.Load(c.Context()); err != nil {
					return err
				}
				current, ok := findByID(p.Items(), args[0])
				if !ok {
					return fmt.Errorf("%s %s not found", def.name, args[0])
				}
				if err := p.OpenEdit(current); err != nil {
					return err
				}
				for k, v := range fields {
					p.SetField(k, v)
				}
				item, err := p.Submit(c.Context())
				if err != nil {
					return err
				}
				return printJSON(item)
			},
		}
		update.Flags().StringVarP(&data, "data", "d", "{}", "JSON object of fields to change")
		cmd.AddCommand(update)
	}

	if def.caps&capDelete != 0 {
		cmd.AddCommand(&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a record after confirmation",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				p, _ := buildPage()
				_, err := p.Delete(c.Context(), args[0])
				return err
			},
		})
		cmd.AddCommand(&cobra.Command{
			Use:   "bulk-delete <id>...",
			Short: "Delete several records concurrently",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				p, _ := buildPage()
				for _, id := range args {
					p.ToggleSelect(id)
				}
				deleted, err := p.BulkDelete(c.Context())
				fmt.Fprintf(os.Stderr, "deleted %d of %d\n", deleted, len(args))
				return err
			},
		})
	}

	if def.caps&capStatus != 0 {
		cmd.AddCommand(&cobra.Command{
			Use:   "status <id> <status>",
			Short: "Set the status of a record",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				msg, err := def.pick(api()).SetStatus(c.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			},
		})
	}
	return cmd
}

func findByID[T any](items []T, id string) (T, bool) {
	for _, item := range items {
		if jsonID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func parseData(raw string) (page.Form, error) {
	fields := make(page.Form)
	if strings.TrimSpace(raw) == "" {
		return fields, nil
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	return fields, nil
}

func printItems[T any](items []T, columns []export.Column[T]) error {
	if outputJSON || len(columns) == 0 {
		return printJSON(items)
	}
	table := export.Build(columns, items)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Header, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
