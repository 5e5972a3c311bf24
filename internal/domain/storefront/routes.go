package storefront

import (
	"net/url"
	"strconv"
)

const (
	PathHome      = "/"
	PathListing   = "/listing"
	PathFavorites = "/favorites"
	PathBag       = "/bag"
	PathSession   = "/session"
)

func ProductPath(id int) string {
	return "/product/" + strconv.Itoa(id)
}

// ListingPath arma /listing con el tag preseleccionado (vacío = All).
func ListingPath(tag string) string {
	if tag == "" {
		return PathListing
	}
	return PathListing + "?" + url.Values{"tag": {tag}}.Encode()
}
