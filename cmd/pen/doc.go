// Command pen draws pens composed from a color and a size.
//
// With no flags it draws the four demo pens, one line each, on stdout:
//
//	$ pen
//	使用红色小笔绘画
//	使用绿色中笔绘画
//	使用红色大笔绘画
//	使用绿色小笔绘画
//
// Pens can be chosen on the command line as size:color pairs, in order:
//
//	$ pen --pen big:green --pen small:red
//
// or from a YAML file (--config, or PEN_CONFIG):
//
//	log_level: info
//	pens:
//	  - size: middle
//	    color: red
//
// Precedence, lowest first: built-in defaults, config file, PEN_LOG_LEVEL,
// flags. Logs go to stderr so stdout only ever carries drawn lines.
//
// "pen list" prints the registered color and size keys.
//
// Exit codes: 0 on success, 1 on a bad flag, config file or unknown key.
package main
