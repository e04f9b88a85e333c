package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func main() {
	customerID := flag.StringP("customer", "c", "", "ID da conta do Google Ads (ex.: 123-456-7890)")
	date := flag.StringP("date", "d", "", "Data do relatório diário (YYYY-MM-DD)")
	report := flag.StringP("report", "r", string(domain.ReportTypeCampaigns), "Relatório diário: campaigns, ad-groups ou ads")
	flag.Parse()

	if *customerID == "" || *date == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	reportType, err := domain.ParseReportType(*report)
	if err != nil {
		logrus.Fatal(err)
	}

	client := adsclient.NewClient(cfg, adsclient.NewTokenManager(cfg))
	service, err := reporting.NewService(cfg, client, adsdomain.DefaultEnumRegistry())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(context.Background(), os.Stdout, service, *customerID, reportType, *date); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar relatório")
	}
}

// run imprime as campanhas da conta e o relatório diário escolhido
func run(ctx context.Context, w io.Writer, service reporting.Reporter, customerID string, reportType domain.ReportType, date string) error {
	campaigns, err := service.GetCampaigns(ctx, customerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Campanhas (%d)\n", campaigns.Len())
	if err := printTable(w, campaigns); err != nil {
		return err
	}

	var daily *domain.ReportTable
	switch reportType {
	case domain.ReportTypeAdGroups:
		daily, err = service.GetAdGroupReport(ctx, customerID, date)
	case domain.ReportTypeAds:
		daily, err = service.GetAdsReport(ctx, customerID, date)
	default:
		daily, err = service.GetCampaignReport(ctx, customerID, date)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRelatório %s em %s (%d)\n", reportType, date, daily.Len())
	return printTable(w, daily)
}

func printTable(w io.Writer, table *domain.ReportTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(table.Columns(), "\t"))
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		cells := make([]string, len(row))
		for j, value := range row {
			cells[j] = fmt.Sprint(value)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
