// Package config loads runtime settings from defaults, an optional YAML file
// and GROCERY_* environment variables, in increasing order of precedence.
//
// Configuration keys and defaults:
//
//	storage.backend  file | memory            (file)
//	storage.dir      root of session dirs      (os.TempDir())
//	session.id       session identifier        (parent process id)
//	log.level        debug | info | warn | error (warn)
//	log.file         log destination           ("" = stderr, discarded in the TUI)
//	ui.theme         classic | neon | mono     (classic)
//	ui.locale        BCP 47 tag for name sort  (en)
//	ui.sort          input | name | checked    (input)
//
// Every key can be set through the environment by upper-casing it, replacing
// dots with underscores and prefixing GROCERY_, e.g. GROCERY_UI_THEME=neon.
package config
