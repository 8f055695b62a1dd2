// Package pal declares the platform-abstraction contracts consumed by the
// runtime core: Clock, Console, Socket, Thread, and Lock. This package is
// deliberately interfaces-only, per the framework's scope: concrete
// platform support layers (PSLs) live under sibling packages such as
// github.com/sf-go/sf/psl/linux.
package pal
