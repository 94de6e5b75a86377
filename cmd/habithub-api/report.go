package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habithub/backend/internal/config"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/presenter"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the progress dashboard",
	Long:  `Compute the dashboard, goal progress and finance overview for a date and print them as tables.`,
	RunE:  runReport,
}

var (
	reportDate     string
	reportCurrency string
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	good    = color.New(color.FgGreen).SprintFunc()
	warn    = color.New(color.FgYellow).SprintFunc()
	bad     = color.New(color.FgRed).SprintFunc()
)

func init() {
	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "", "Reference date (YYYY-MM-DD), defaults to today")
	reportCmd.Flags().StringVar(&reportCurrency, "currency", presenter.DefaultCurrency, "Currency code for finance amounts")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var ref time.Time
	if reportDate != "" {
		d, err := models.ParseDate(reportDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		ref = d.Time
	}

	a, err := newApp(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	dashboard, err := a.analyticsService.Dashboard(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to compute dashboard: %w", err)
	}
	goals, err := a.goalService.ListGoals(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list goals: %w", err)
	}
	overview, err := a.analyticsService.FinanceOverview(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to compute finance overview: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := printDashboard(out, dashboard); err != nil {
		return err
	}
	if err := printGoals(out, goals, dashboard.ReferenceDate); err != nil {
		return err
	}
	return printFinance(out, overview, reportCurrency)
}

func percentCell(p int) string {
	s := strconv.Itoa(p) + "%"
	switch {
	case p >= 75:
		return good(s)
	case p >= 25:
		return warn(s)
	default:
		return bad(s)
	}
}

func printDashboard(w io.Writer, d *models.Dashboard) error {
	fmt.Fprintf(w, "\n%s %s\n", heading("Dashboard for"), d.ReferenceDate)
	fmt.Fprintln(w, presenter.Message(d.Band))

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	_ = table.Append([]string{"Overall progress", percentCell(d.OverallProgress)})
	_ = table.Append([]string{"Goal streak", fmt.Sprintf("%d days", d.GoalStreak)})
	_ = table.Append([]string{"Todo streak", fmt.Sprintf("%d days", d.TodoStreak)})
	_ = table.Append([]string{"Today's todos", percentCell(d.DailyCompletion)})
	_ = table.Append([]string{"All todos", percentCell(d.TodoCompletionRate)})
	if err := table.Render(); err != nil {
		return err
	}

	categories := tablewriter.NewWriter(w)
	categories.Header("Category", "Goals", "Completed", "Progress", "Streak")
	for _, c := range d.Categories {
		_ = categories.Append([]string{
			c.Category,
			strconv.Itoa(c.TotalGoals),
			strconv.Itoa(c.CompletedGoals),
			percentCell(c.Progress),
			strconv.Itoa(c.Streak),
		})
	}
	return categories.Render()
}

func printGoals(w io.Writer, goals []models.Goal, ref models.Date) error {
	if len(goals) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\n%s\n", heading("Goals"))

	table := tablewriter.NewWriter(w)
	table.Header("Title", "Category", "Progress", "Status", "Due")
	for _, g := range goals {
		due := ""
		if !g.EndDate.IsZero() {
			due = g.EndDate.String()
			if g.EndDate.Before(ref) && g.Status != models.GoalStatusCompleted {
				due = bad(due)
			}
		}
		_ = table.Append([]string{g.Title, g.Category, presenter.GoalLine(g), string(g.Status), due})
	}
	return table.Render()
}

func printFinance(w io.Writer, f *models.FinanceOverview, currency string) error {
	fmt.Fprintf(w, "\n%s\n", heading("Finances"))

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Amount")
	_ = table.Append([]string{"Balance", presenter.FormatCurrency(f.TotalBalance, currency)})
	_ = table.Append([]string{"Income this month", presenter.FormatCurrency(f.MonthlyIncome, currency)})
	_ = table.Append([]string{"Spending this month", presenter.FormatCurrency(f.MonthlySpending, currency)})
	net := presenter.FormatCurrency(f.MonthlyNet, currency)
	if f.MonthlyNet.IsNegative() {
		net = bad(net)
	}
	_ = table.Append([]string{"Net", net})
	if err := table.Render(); err != nil {
		return err
	}

	if len(f.UpcomingBills) == 0 {
		return nil
	}
	bills := tablewriter.NewWriter(w)
	bills.Header("Bill", "Due", "Amount")
	for _, b := range f.UpcomingBills {
		_ = bills.Append([]string{b.Name, b.DueDate.String(), presenter.FormatCurrency(b.Amount, currency)})
	}
	return bills.Render()
}
