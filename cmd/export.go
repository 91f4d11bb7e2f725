package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/numlab/gowave/trace"
)

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "write the snapshot table to this CSV file")
	cmd.Flags().String("json", "", "write the history with run metadata to this JSON file")
}

func writeExports(cmd *cobra.Command, h *trace.History, meta trace.RunMeta) {
	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		writeFile(path, func(f *os.File) error { return h.WriteCSV(f) })
	}
	if path, _ := cmd.Flags().GetString("json"); path != "" {
		writeFile(path, func(f *os.File) error { return h.WriteJSON(f, meta) })
	}
}

func writeFile(path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	if err = write(f); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
