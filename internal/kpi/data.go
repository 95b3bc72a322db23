package kpi

import (
	"fmt"

	"github.com/emagineer/kpiboard/internal/prefs"
)

// windows builds a per-range map from current/previous pairs listed in
// prefs.TimeRanges order.
func windows(pairs ...float64) map[prefs.TimeRange]Metric {
	ranges := prefs.TimeRanges()
	if len(pairs) != len(ranges)*2 {
		panic(fmt.Sprintf("kpi: expected %d values, got %d", len(ranges)*2, len(pairs)))
	}
	out := make(map[prefs.TimeRange]Metric, len(ranges))
	for i, r := range ranges {
		out[r] = Metric{Current: pairs[i*2], Previous: pairs[i*2+1]}
	}
	return out
}

// flat repeats one current/previous pair across every range.
func flat(current, previous float64) map[prefs.TimeRange]Metric {
	out := make(map[prefs.TimeRange]Metric)
	for _, r := range prefs.TimeRanges() {
		out[r] = Metric{Current: current, Previous: previous}
	}
	return out
}

// Sample returns the built-in dataset.
func Sample() Dataset {
	return Dataset{
		WellBefore:        wellBefore(),
		D2CBuilders:       d2cBuilders(),
		PortfolioInsights: portfolioInsights(),
	}
}

func wellBefore() *Company {
	return &Company{
		ID:           prefs.CompanyWellBefore,
		Name:         "WellBefore",
		Tagline:      "$10M DTC Ecommerce",
		Short:        "WB",
		CashPosition: 1_240_000,
		KPIs: []KPI{
			{
				Key: "revenue", Label: "Revenue", Unit: UnitCurrency,
				Windows: windows(
					32_400, 29_800,
					29_800, 31_200,
					198_500, 186_200,
					812_400, 745_300,
					2_410_000, 2_180_000,
					8_350_000, 6_920_000,
				),
			},
			{
				Key: "orders", Label: "Orders", Unit: UnitCount,
				Windows: windows(
					412, 389,
					389, 402,
					2_540, 2_410,
					10_380, 9_620,
					30_850, 28_400,
					107_200, 91_800,
				),
			},
			{
				Key: "aov", Label: "Avg Order Value", Unit: UnitCurrency, Audience: AudienceExecutive,
				Windows: windows(
					78.64, 76.61,
					76.61, 77.61,
					78.15, 77.26,
					78.27, 77.47,
					78.12, 76.76,
					77.89, 75.38,
				),
			},
			{
				Key: "gross_margin", Label: "Gross Margin", Unit: UnitPercent, Audience: AudienceExecutive,
				Windows: windows(
					61.8, 62.4,
					62.4, 62.0,
					61.9, 62.8,
					62.1, 63.0,
					62.3, 62.9,
					62.6, 61.8,
				),
			},
			{
				Key: "net_profit", Label: "Net Profit", Unit: UnitCurrency, Audience: AudienceExecutive,
				Windows: windows(
					4_860, 4_170,
					4_170, 4_680,
					29_800, 26_100,
					121_900, 104_300,
					361_500, 318_000,
					1_252_000, 968_000,
				),
			},
			{
				Key: "ltv_cac", Label: "LTV:CAC", Unit: UnitRatio, Audience: AudienceExecutive,
				Windows: flat(3.6, 3.4),
			},
			{
				Key: "cac", Label: "Customer Acq. Cost", Unit: UnitCurrency, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: windows(
					31.20, 33.05,
					33.05, 32.40,
					32.10, 33.80,
					32.40, 34.10,
					33.00, 34.60,
					33.90, 36.20,
				),
			},
			{
				Key: "conversion_rate", Label: "Conversion Rate", Unit: UnitPercent, Audience: AudienceOperator,
				Windows: windows(
					3.1, 2.9,
					2.9, 3.0,
					3.0, 2.8,
					3.0, 2.7,
					2.9, 2.7,
					2.8, 2.5,
				),
			},
			{
				Key: "return_rate", Label: "Return Rate", Unit: UnitPercent, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: windows(
					4.6, 3.9,
					3.9, 3.8,
					4.3, 3.7,
					4.2, 3.8,
					4.0, 3.9,
					3.9, 4.1,
				),
			},
			{
				Key: "on_time_rate", Label: "On-Time Shipping", Unit: UnitPercent, Audience: AudienceOperator,
				Windows: windows(
					93.8, 95.9,
					95.9, 96.2,
					94.9, 96.0,
					94.5, 96.1,
					95.2, 95.8,
					95.6, 94.9,
				),
			},
			{
				Key: "inventory_days", Label: "Days of Inventory", Unit: UnitDays, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: flat(48, 52),
			},
		},
		Targets: []Target{
			{Key: "revenue", Label: "Revenue", Unit: UnitCurrency, Current: 812_400, Goal: 900_000},
			{Key: "gross_margin", Label: "Gross Margin", Unit: UnitPercent, Current: 62.1, Goal: 65},
			{Key: "orders", Label: "Orders", Unit: UnitCount, Current: 10_380, Goal: 11_500},
			{Key: "cac", Label: "Customer Acq. Cost", Unit: UnitCurrency, Current: 32.4, Goal: 30, LowerIsBetter: true},
		},
		Trend: []float64{612, 634, 658, 641, 689, 702, 718, 695, 741, 768, 745, 812},
		Insights: []Insight{
			{
				Type: InsightCritical, Company: prefs.CompanyWellBefore,
				Title:  "Return rate above 4% threshold",
				Detail: "Sizing complaints on the compression line drove returns up 0.4 pts this month.",
			},
			{
				Type: InsightWarning, Company: prefs.CompanyWellBefore,
				Title:  "On-time shipping slipped below 95%",
				Detail: "Carrier pickup delays at the east coast warehouse since the 12th.",
			},
			{
				Type: InsightWarning, Company: prefs.CompanyWellBefore,
				Title:  "Gross margin 0.9 pts under last month",
				Detail: "Promotional discounting on bundles outpaced the freight savings.",
			},
			{
				Type: InsightSuccess, Company: prefs.CompanyWellBefore,
				Title:  "LTV:CAC holding at 3.6:1",
				Detail: "Subscription retention offsets the higher paid social spend.",
			},
			{
				Type: InsightInfo, Company: prefs.CompanyWellBefore,
				Title:  "Conversion up to 3.0%",
				Detail: "New checkout flow rolled out to all traffic on the 3rd.",
			},
		},
	}
}

func d2cBuilders() *Company {
	return &Company{
		ID:      prefs.CompanyD2CBuilders,
		Name:    "D2C Builders",
		Tagline: "$2M 3PL Operations",
		Short:   "D2C",
		KPIs: []KPI{
			{
				Key: "revenue", Label: "Revenue", Unit: UnitCurrency,
				Windows: windows(
					6_900, 6_400,
					6_400, 6_700,
					41_200, 39_100,
					168_200, 159_800,
					497_000, 462_000,
					1_720_000, 1_480_000,
				),
			},
			{
				Key: "orders_shipped", Label: "Orders Shipped", Unit: UnitCount,
				Windows: windows(
					1_980, 1_870,
					1_870, 1_910,
					11_850, 11_200,
					48_200, 45_100,
					142_300, 131_900,
					496_000, 441_000,
				),
			},
			{
				Key: "gross_margin", Label: "Gross Margin", Unit: UnitPercent, Audience: AudienceExecutive,
				Windows: windows(
					30.9, 32.8,
					32.8, 33.0,
					31.2, 33.1,
					31.4, 33.2,
					32.0, 33.4,
					32.9, 33.6,
				),
			},
			{
				Key: "net_profit", Label: "Net Profit", Unit: UnitCurrency, Audience: AudienceExecutive,
				Windows: windows(
					760, 690,
					690, 720,
					4_520, 4_310,
					18_400, 17_900,
					54_800, 51_200,
					189_000, 162_000,
				),
			},
			{
				Key: "active_clients", Label: "Active Clients", Unit: UnitCount, Audience: AudienceExecutive,
				Windows: flat(24, 22),
			},
			{
				Key: "on_time_rate", Label: "On-Time Ship Rate", Unit: UnitPercent, Audience: AudienceOperator,
				Windows: windows(
					97.8, 96.9,
					96.9, 97.1,
					97.4, 96.6,
					97.2, 96.4,
					96.9, 96.2,
					96.5, 95.1,
				),
			},
			{
				Key: "pick_error_rate", Label: "Pick Error Rate", Unit: UnitPercent, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: windows(
					0.38, 0.47,
					0.47, 0.44,
					0.40, 0.52,
					0.42, 0.55,
					0.46, 0.58,
					0.51, 0.63,
				),
			},
			{
				Key: "cost_per_order", Label: "Cost per Order", Unit: UnitCurrency, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: windows(
					3.44, 3.58,
					3.58, 3.52,
					3.47, 3.60,
					3.49, 3.61,
					3.53, 3.66,
					3.57, 3.74,
				),
			},
			{
				Key: "utilization", Label: "Warehouse Utilization", Unit: UnitPercent, Audience: AudienceOperator,
				Windows: flat(82, 78),
			},
			{
				Key: "dock_to_stock", Label: "Dock-to-Stock", Unit: UnitDays, Audience: AudienceOperator, LowerIsBetter: true,
				Windows: flat(1.4, 1.8),
			},
		},
		Targets: []Target{
			{Key: "revenue", Label: "Revenue", Unit: UnitCurrency, Current: 168_200, Goal: 175_000},
			{Key: "on_time_rate", Label: "On-Time Ship Rate", Unit: UnitPercent, Current: 97.2, Goal: 98},
			{Key: "gross_margin", Label: "Gross Margin", Unit: UnitPercent, Current: 31.4, Goal: 35},
			{Key: "error_rate", Label: "Pick Error Rate", Unit: UnitPercent, Current: 0.42, Goal: 0.4, LowerIsBetter: true},
		},
		Trend: []float64{121, 126, 131, 128, 137, 142, 139, 148, 151, 157, 160, 168},
		Insights: []Insight{
			{
				Type: InsightWarning, Company: prefs.CompanyD2CBuilders,
				Title:  "Gross margin down 1.8 pts",
				Detail: "Overtime during the onboarding of two new clients raised labor cost per order.",
			},
			{
				Type: InsightWarning, Company: prefs.CompanyD2CBuilders,
				Title:  "Utilization at 82% of capacity",
				Detail: "Peak season volume will exceed rack space without the mezzanine expansion.",
			},
			{
				Type: InsightSuccess, Company: prefs.CompanyD2CBuilders,
				Title:  "Pick errors down to 0.42%",
				Detail: "Scan-to-verify at pack stations cut mis-picks by a quarter.",
			},
			{
				Type: InsightInfo, Company: prefs.CompanyD2CBuilders,
				Title:  "Two clients in onboarding",
				Detail: "Expected to add roughly $18K in monthly revenue from next month.",
			},
		},
	}
}

func portfolioInsights() []Insight {
	return []Insight{
		{
			Type: InsightCritical, Company: prefs.CompanyPortfolio,
			Title:  "Shared carrier contract renewal due in 21 days",
			Detail: "Both companies ship on the same contract; rate increases hit WellBefore margin first.",
		},
		{
			Type: InsightWarning, Company: prefs.CompanyPortfolio,
			Title:  "WellBefore fulfillment could move in-house to D2C Builders",
			Detail: "Consolidating would lift D2C utilization above 95% without expansion.",
		},
		{
			Type: InsightInfo, Company: prefs.CompanyPortfolio,
			Title:  "Combined revenue pacing 12% above last year",
			Detail: "Year-to-date growth is led by WellBefore subscriptions.",
		},
	}
}
