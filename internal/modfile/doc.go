// Package modfile reads and writes mod files and the defs documents they are
// applied to.
//
// A mod file is YAML or JSON, chosen by file extension. It is either a bare
// list of modifier definitions or an object carrying a name:
//
//	name: balance-pass
//	modifiers:
//	  - guid: rifle
//	    field: damage.amount
//	    value: 40
//	  - cls: game.Tuning+AI
//	    modletlist:
//	      - field: aggro
//	        value: 0.75
//
// A file loaded from disk without a name is named after the file.
//
// A defs document is a mapping of definition id to an arbitrary tree of
// mappings, sequences and scalars. LoadDefs fills a store.Memory with it.
package modfile
