package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tradej/go-augeas"
	"github.com/tradej/go-augeas/internal/config"
)

// session holds one handle for the duration of a command, together with the
// effective configuration it was opened with.
type session struct {
	aug  *augeas.Augeas
	cfg  *config.Config
	noop bool
}

// openSession loads the config file, merges the persistent flags over it
// and initializes a handle. Transforms declared in the config file are
// registered and loaded. needSpan forces EnableSpan on for commands that
// cannot work without position tracking.
func openSession(needSpan bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	root := rootFlags.root
	if root == "" {
		root = cfg.Root
	}
	loadPath := rootFlags.loadPath
	if loadPath == "" {
		loadPath = cfg.LoadPath
	}
	flags, err := effectiveFlags(cfg, needSpan)
	if err != nil {
		return nil, err
	}

	log.Debug("initializing augeas", "root", root, "loadpath", loadPath, "flags", fmt.Sprintf("%#x", uint(flags)))
	aug, err := augeas.New(root, loadPath, flags)
	if err != nil {
		return nil, err
	}

	s := &session{aug: aug, cfg: cfg, noop: flags&augeas.SaveNoop != 0}
	if err := s.applyTransforms(); err != nil {
		aug.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) close() {
	s.aug.Close()
}

// applyTransforms registers the transforms from the config file and
// reloads, so only their files populate /files.
func (s *session) applyTransforms() error {
	if len(s.cfg.Transforms) == 0 {
		return nil
	}
	if err := s.aug.ClearTransforms(); err != nil {
		return err
	}
	for _, t := range s.cfg.Transforms {
		log.Debug("adding transform", "lens", t.Lens, "incl", t.Incl, "excl", t.Excl)
		if err := s.aug.AddTransform(t.Lens, t.Name, t.Incl, t.Excl...); err != nil {
			return err
		}
	}
	return s.aug.Load()
}

// save writes pending changes and reports what happened. Under --noop it
// lists the files that would have been written instead.
func (s *session) save() error {
	if err := s.aug.Save(); err != nil {
		return err
	}
	if !s.noop {
		return nil
	}
	saved, err := s.aug.Match("/augeas/events/saved")
	if err != nil {
		return err
	}
	for _, p := range saved {
		if f, ok, _ := s.aug.Get(p); ok {
			fmt.Println(dimStyle.Render("would save " + f))
		}
	}
	return nil
}

// loadConfig reads the file named by --config, or the default location when
// the flag is unset.
func loadConfig() (*config.Config, error) {
	if rootFlags.configFile != "" {
		return config.Load(rootFlags.configFile)
	}
	return config.LoadDefault()
}

// effectiveFlags merges the config file flag names with the persistent
// boolean flags.
func effectiveFlags(cfg *config.Config, needSpan bool) (augeas.Flag, error) {
	flags, err := config.ParseFlagNames(cfg.Flags)
	if err != nil {
		return augeas.None, err
	}
	for _, f := range []struct {
		set  bool
		flag augeas.Flag
	}{
		{rootFlags.backup, augeas.SaveBackup},
		{rootFlags.newFile, augeas.SaveNewFile},
		{rootFlags.typeCheck, augeas.TypeCheck},
		{rootFlags.noStdinc, augeas.NoStdinc},
		{rootFlags.noop, augeas.SaveNoop},
		{rootFlags.noLoad, augeas.NoLoad},
		{rootFlags.noAutoload, augeas.NoModlAutoload},
		{rootFlags.span || needSpan, augeas.EnableSpan},
	} {
		if f.set {
			flags |= f.flag
		}
	}
	return flags, nil
}
