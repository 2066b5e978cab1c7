package env

import (
	"fmt"
	"net/http"

	"github.com/carlmjohnson/versioninfo"
)

const unset = "unset"

// Version may be overridden at link time (-ldflags "-X ...env.Version=v1.2.3"). Otherwise the VCS info embedded by the Go toolchain is used.
var Version = unset

func Short() string {
	if Version != unset {
		return Version
	}
	return versioninfo.Short()
}

func VersionHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "%s\n", Short()) // nolint:errcheck
}
