// Command catalog-check validates a storefront catalog file and prints
// its contents, so catalog edits can be checked before a deploy.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rcastano/creator-store/internal/adapter/storage"
)

func main() {
	path := flag.String("f", "catalog.yaml", "path to the catalog file")
	flag.Parse()

	catalog, err := storage.LoadCatalog(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog-check: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "currency\t%s\n\n", catalog.Currency())

	fmt.Fprintln(w, "PRODUCT\tTITLE\tPRICE\tBADGE")
	for _, p := range catalog.Products() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Price.Amount.StringFixed(2), p.Badge)
	}

	fmt.Fprintln(w, "\nPLAN\tNAME\tPRICE")
	for _, p := range catalog.Plans() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Price.Amount.StringFixed(2))
	}

	fmt.Fprintln(w, "\nVIDEO\tTITLE\tEMBED URL")
	for _, v := range catalog.Videos() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID, v.Title, v.EmbedURL)
	}

	w.Flush()

	fmt.Printf("\nok: %d products, %d plans, %d videos\n",
		len(catalog.Products()), len(catalog.Plans()), len(catalog.Videos()))
}
