package main

import (
	"fmt"

	"github.com/dkrahn/archivekit/internal/validate"
)

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: archivekit validate <dir>")
	}

	s, err := validate.Scan(args[0])
	if err != nil {
		return err
	}

	for _, f := range s.Files {
		switch f.KindName {
		case "array", "object":
			fmt.Printf("  %-40s %s (%d)\n", f.Name, f.KindName, f.Elements)
		default:
			fmt.Printf("  %-40s %s\n", f.Name, f.KindName)
		}
	}
	fmt.Printf("%d array(s), %d object(s), %d scalar(s), %d opaque\n",
		s.Arrays, s.Objects, s.Scalars, s.Opaque)
	return nil
}
