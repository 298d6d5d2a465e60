package vaultfmt_test

import (
	"fmt"
	"log"

	"github.com/e-XpertSolutions/vaultfmt"
)

type memCreds struct{ password string }

func (c memCreds) Password(string) (string, error) { return c.password, nil }

func Example() {
	engine := vaultfmt.NewEngine()

	groupID := vaultfmt.GenerateID()
	entryID := vaultfmt.GenerateID()

	cgr, err := vaultfmt.BuildCommand("cgr", string(vaultfmt.RootID), string(groupID))
	if err != nil {
		log.Print("[error] ", err)
		return
	}
	cen, err := vaultfmt.BuildCommand("cen", string(groupID), string(entryID))
	if err != nil {
		log.Print("[error] ", err)
		return
	}
	sep, err := vaultfmt.BuildCommand("sep", string(entryID), "password", "my_very_secret_password")
	if err != nil {
		log.Print("[error] ", err)
		return
	}

	if err := engine.Execute(cgr, cen, sep); err != nil {
		log.Print("[error] ", err)
		return
	}

	creds := memCreds{password: "strong_passphrase"}
	envelope, err := engine.Save(vaultfmt.DefaultFormatEnv(), creds, "default")
	if err != nil {
		log.Print("[error] ", err)
		return
	}

	reopened := vaultfmt.NewEngine()
	if err := reopened.Load(vaultfmt.DefaultFormatEnv(), creds, "default", envelope); err != nil {
		log.Print("[error] ", err)
		return
	}

	entries := reopened.GetDataset().GetAllEntries()
	fmt.Println("Entries:", len(entries))
	fmt.Println("Retrieved password:", entries[0].Properties["password"])

	// Output:
	// Entries: 1
	// Retrieved password: my_very_secret_password
}
