package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type windowFlags struct {
	from string
	to   string
	days int
}

func (f *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Window end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.days, "days", 30, "Trailing window when --from is omitted")
}

func (f *windowFlags) window() (time.Time, time.Time, error) {
	end := time.Now()
	if f.to != "" {
		parsed, err := time.Parse(dateLayout, f.to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to value %q: %w", f.to, err)
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -f.days)
	if f.from != "" {
		parsed, err := time.Parse(dateLayout, f.from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from value %q: %w", f.from, err)
		}
		start = parsed
	}
	return start, end, nil
}

func NewSalesCmd(reports report.Service, reporter *export.Reporter) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales totals per company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := flags.window()
			if err != nil {
				return err
			}
			result, err := reports.SalesByCompany(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return reporter.Handle(buildSalesReport(result))
		},
	}
	flags.register(cmd)
	return cmd
}

func NewInventoryCmd(reports report.Service, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Live stock state per company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := reports.Inventory(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.Handle(buildInventoryReport(result))
		},
	}
}

func NewProfitCmd(reports report.Service, reporter *export.Reporter) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Revenue against spend per company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := flags.window()
			if err != nil {
				return err
			}
			result, err := reports.Profit(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return reporter.Handle(buildProfitReport(result))
		},
	}
	flags.register(cmd)
	return cmd
}

func buildSalesReport(r *domain.SalesReport) *domain.Report {
	out := &domain.Report{
		Title:    "Sales by company",
		Period:   reportPeriod(r.Period),
		Currency: "EUR",
	}

	for _, id := range sortedCompanyIDs(r.Companies) {
		c := r.Companies[id]
		section := domain.ReportSection{
			Title: c.CompanyName,
			Summary: map[string]interface{}{
				"total_sales":         c.TotalSales.StringFixed(2),
				"items_sold":          c.TotalItemsSold,
				"average_order_value": c.AverageOrderValue.StringFixed(2),
			},
		}
		for _, it := range c.Items {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        it.ItemName,
				Value:       it.TotalRevenue.StringFixed(2),
				Unit:        "EUR",
				Description: fmt.Sprintf("%s, qty %d, avg price %s", it.SKU, it.TotalQuantity, it.AveragePrice.StringFixed(2)),
			})
		}
		out.Sections = append(out.Sections, section)
		out.TotalAmount += c.TotalSales.InexactFloat64()
	}
	return out
}

func buildInventoryReport(r *domain.InventoryReport) *domain.Report {
	out := &domain.Report{
		Title:    "Inventory",
		Currency: "EUR",
	}

	for _, id := range sortedCompanyIDs(r.Companies) {
		c := r.Companies[id]
		section := domain.ReportSection{
			Title: c.CompanyName,
			Summary: map[string]interface{}{
				"total_items":     c.TotalItems,
				"stock_value":     c.TotalStockValue.StringFixed(2),
				"low_stock_items": len(c.LowStockItems),
			},
		}
		for _, it := range c.Items {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        it.ItemName,
				Value:       it.CurrentStock,
				Unit:        it.StockUnit,
				Description: fmt.Sprintf("%s, value %s %s", it.SKU, it.StockValue.StringFixed(2), it.PriceUnit),
			})
		}
		out.Sections = append(out.Sections, section)
		out.TotalAmount += c.TotalStockValue.InexactFloat64()
	}
	return out
}

func buildProfitReport(r *domain.ProfitReport) *domain.Report {
	out := &domain.Report{
		Title:    "Profit by company",
		Period:   reportPeriod(r.Period),
		Currency: "EUR",
	}

	for _, id := range sortedCompanyIDs(r.Companies) {
		c := r.Companies[id]
		section := domain.ReportSection{
			Title: c.CompanyName,
			Summary: map[string]interface{}{
				"revenue":       c.TotalRevenue.StringFixed(2),
				"cost":          c.TotalCost.StringFixed(2),
				"gross_profit":  c.GrossProfit.StringFixed(2),
				"profit_margin": fmt.Sprintf("%.1f%%", c.ProfitMargin),
			},
		}
		for _, it := range c.Items {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        it.ItemName,
				Value:       it.Profit.StringFixed(2),
				Unit:        "EUR",
				Description: fmt.Sprintf("sold %d, bought %d, margin %.1f%%", it.SoldQuantity, it.PurchasedQuantity, it.ProfitMargin),
			})
		}
		out.Sections = append(out.Sections, section)
		out.TotalAmount += c.GrossProfit.InexactFloat64()
	}
	return out
}

func reportPeriod(p domain.Period) domain.TimePeriod {
	return domain.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: int(p.End.Sub(p.Start).Hours() / 24),
	}
}

func sortedCompanyIDs[T any](companies map[int64]T) []int64 {
	ids := make([]int64, 0, len(companies))
	for id := range companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
