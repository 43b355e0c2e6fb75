/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "report-cli",
	Short: "Interactive browser for bank transaction files",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP(browseCmdFile, "f", "", "transactions file path")
	browseCmd.Flags().StringP(browseCmdFormat, "t", "", "file format: json, csv or xlsx")
}
