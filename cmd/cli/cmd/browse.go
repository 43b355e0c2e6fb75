/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/moneta-lab/go-finance-report/cmd/setup"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/models"
	"github.com/moneta-lab/go-finance-report/internal/repositories"

	"github.com/spf13/cobra"
)

var (
	browseCmd = &cobra.Command{
		Use:     "browse",
		Short:   "Browse a transactions file with interactive filters",
		Long:    ``,
		Example: "report-cli browse -f=operations.csv -t=csv",
		Run:     browse,
	}
	browseCmdFile   = "file"
	browseCmdFormat = "format"
)

func browse(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
		in  = bufio.NewScanner(os.Stdin)
	)

	s, _, err := setup.Init("cli")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	format, _ := ccmd.Flags().GetString(browseCmdFormat)
	path, _ := ccmd.Flags().GetString(browseCmdFile)

	if format == "" {
		format = askFormat(in)
	}
	if path == "" {
		path = ask(in, "Enter the file path: ")
	}

	transactions, err := loadByFormat(ctx, s.FileRepo, format, path)
	if err != nil {
		log.Fatalf(ctx, "failed to load transactions: %v", err)
	}
	fmt.Printf("Loaded %d records from %s\n", len(transactions), path)

	transactions = transactions.FilterByStatus(askStatus(in))

	if askYesNo(in, "Sort by date? (yes/no): ") {
		descending := false
		for {
			order := strings.ToLower(ask(in, "Sort order (asc/desc): "))
			if order == "asc" || order == "desc" {
				descending = order == "desc"
				break
			}
			fmt.Println("Unknown order, enter asc or desc.")
		}
		transactions = transactions.SortByDate(descending)
	}

	if askYesNo(in, fmt.Sprintf("Only %s operations? (yes/no): ", s.Config.HomeCurrency)) {
		filtered := make(models.TransactionList, 0, len(transactions))
		for t := range transactions.FilterByCurrency(s.Config.HomeCurrency) {
			filtered = append(filtered, t)
		}
		transactions = filtered
	}

	if askYesNo(in, "Search in descriptions? (yes/no): ") {
		pattern := ask(in, "Enter a search word: ")
		transactions, err = transactions.FilterByDescription(pattern)
		if err != nil {
			log.Fatalf(ctx, "invalid search pattern: %v", err)
		}
	}

	printTransactions(transactions)
}

func loadByFormat(ctx context.Context, repo repositories.FileRepository, format, path string) (models.TransactionList, error) {
	switch strings.ToLower(format) {
	case "json":
		return repo.LoadJSON(ctx, path)
	case "csv":
		return repo.LoadCSV(ctx, path)
	case "xlsx":
		return repo.LoadXLSX(ctx, path)
	default:
		return repo.Load(ctx, path)
	}
}

func askFormat(in *bufio.Scanner) string {
	for {
		fmt.Println("Choose the file format:")
		fmt.Println("  1. json")
		fmt.Println("  2. csv")
		fmt.Println("  3. xlsx")
		switch ask(in, "> ") {
		case "1", "json":
			return "json"
		case "2", "csv":
			return "csv"
		case "3", "xlsx":
			return "xlsx"
		}
		fmt.Println("Unknown format, try again.")
	}
}

// askStatus keeps prompting until the answer is a known operation status.
func askStatus(in *bufio.Scanner) string {
	for {
		status := strings.ToUpper(ask(in, "Filter by status (EXECUTED/CANCELED/PENDING): "))
		if models.IsValidTransactionStatus(status) {
			return status
		}
		fmt.Printf("Status %q is not available.\n", status)
	}
}

func askYesNo(in *bufio.Scanner, prompt string) bool {
	for {
		switch strings.ToLower(ask(in, prompt)) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		fmt.Println("Please answer yes or no.")
	}
}

func ask(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func printTransactions(transactions models.TransactionList) {
	if len(transactions) == 0 {
		fmt.Println("No transactions matched your filters.")
		return
	}

	fmt.Printf("Total: %d\n", len(transactions))
	for _, t := range transactions {
		label := t.Description
		if label == "" {
			label = t.Category
		}
		fmt.Printf("%s %s\n", t.Date.Format(models.DateLayout), label)
		if t.FromAccount != "" {
			fmt.Printf("%s -> %s\n", t.FromAccount, t.ToAccount)
		} else {
			fmt.Println(t.ToAccount)
		}
		fmt.Printf("%s %s\n\n", t.Amount.String(), t.CurrencyCode)
	}
}
