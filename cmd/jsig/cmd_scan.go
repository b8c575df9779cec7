package main

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/jsig/classfile"
	"github.com/dhamidi/jsig/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newScanCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string
	var refs bool

	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Decode the signatures of .class files, directories, jars, or zips",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(opts.outputFormat(cmd, outputFormat), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			s := &scanner{
				enc:  enc,
				refs: refs || opts.cfg.Scan.References,
				log:  commonlog.GetLogger("jsig.scan"),
			}
			for _, path := range args {
				if err := s.scanPath(path); err != nil {
					return err
				}
			}
			return s.finish()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format ("+strings.Join(format.Formats, ", ")+")")
	cmd.Flags().BoolVarP(&refs, "refs", "r", false, "list referenced classes")

	return cmd
}

// scanner decodes every signature it finds. Malformed signatures and
// unreadable class files are logged and counted rather than stopping the
// scan.
type scanner struct {
	enc  format.Encoder
	refs bool
	log  commonlog.Logger

	classes    int
	signatures int
	malformed  int
	unreadable int
}

func (s *scanner) scanPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return s.scanDirectory(path)
	}
	switch ext := filepath.Ext(path); ext {
	case ".jar", ".zip":
		return s.scanArchive(path)
	case ".class":
		return s.scanFile(path)
	default:
		return fmt.Errorf("unsupported file type: %s (expected .class, .jar, .zip, or a directory)", ext)
	}
}

func (s *scanner) scanDirectory(root string) error {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warningf("walk %s: %v", p, err)
			return nil
		}
		if !d.IsDir() && filepath.Ext(p) == ".class" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	s.log.Infof("found %d class files in %s", len(files), root)
	for _, file := range files {
		if err := s.scanFile(file); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) scanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.unreadable++
		s.log.Errorf("open %s: %v", path, err)
		return nil
	}
	defer f.Close()
	return s.scanClass(path, f)
}

func (s *scanner) scanArchive(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || filepath.Ext(f.Name) != ".class" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			s.unreadable++
			s.log.Errorf("open %s!%s: %v", path, f.Name, err)
			continue
		}
		err = s.scanClass(path+"!"+f.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// scanClass only returns errors from the encoder.
func (s *scanner) scanClass(name string, r io.Reader) error {
	cf, err := classfile.Parse(r)
	if err != nil {
		s.unreadable++
		s.log.Errorf("parse class file %s: %v", name, err)
		return nil
	}
	s.classes++

	entries, err := cf.Signatures()
	if err != nil {
		s.unreadable++
		s.log.Errorf("read signatures of %s: %v", name, err)
		return nil
	}

	for _, e := range entries {
		sig, err := e.Parse()
		if err != nil {
			s.malformed++
			s.log.Warningf("%s: %s signature of %s: %v", name, e.Kind, e.Member(), err)
			continue
		}
		s.signatures++

		entry := &format.Entry{
			Owner:      e.Owner,
			Name:       e.Name,
			Descriptor: e.Descriptor,
			Text:       e.Text,
			Signature:  sig,
		}
		if s.refs {
			entry.References = references(sig)
		}
		if err := s.enc.Encode(entry); err != nil {
			return fmt.Errorf("encode %s: %w", e.Member(), err)
		}
	}
	return nil
}

func (s *scanner) finish() error {
	s.log.Infof("scanned %d classes: %d signatures, %d malformed, %d unreadable",
		s.classes, s.signatures, s.malformed, s.unreadable)
	if s.malformed > 0 || s.unreadable > 0 {
		return fmt.Errorf("%d malformed signatures, %d unreadable class files", s.malformed, s.unreadable)
	}
	return nil
}
