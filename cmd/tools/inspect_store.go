// Command inspect-store dumps the records of a guest-push Badger store
// as a table, one row per key under the selected prefix.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"guest-push/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "/tmp/guest-push/badger", "Path to badger DB")
	prefix := flag.String("prefix", "user:", "Prefix to scan (user:, chat:, staff:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Bold.Printf("Records under %q in %s\n\n", *prefix, *dbPath)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, kindOf(key), describe(key, v)})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
	fmt.Printf("\n%d record(s)\n", count)
}

func kindOf(key string) string {
	switch {
	case strings.HasPrefix(key, "user:"):
		return "USER"
	case strings.HasPrefix(key, "chat:"):
		return "CHAT"
	case strings.HasPrefix(key, "staff:"):
		return "STAFF"
	default:
		return "?"
	}
}

// describe renders a compact one-line summary of the stored record.
// Unknown or corrupted values are shown raw instead of aborting the scan.
func describe(key string, value []byte) string {
	switch {
	case strings.HasPrefix(key, "user:"):
		var u domain.User
		if err := json.Unmarshal(value, &u); err == nil {
			token := "no token"
			if u.PushToken != "" {
				token = "token on file"
			}
			return fmt.Sprintf("%s (%s) - %s", u.Name, u.Role, token)
		}
	case strings.HasPrefix(key, "chat:"):
		var c domain.Chat
		if err := json.Unmarshal(value, &c); err == nil {
			return fmt.Sprintf("%d participant(s): %s", len(c.Participants), strings.Join(c.Participants, ", "))
		}
	case strings.HasPrefix(key, "staff:"):
		return string(value)
	}
	return string(value)
}
