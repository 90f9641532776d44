package model

import (
	"reflect"
	"strings"
	"testing"
)

// Domain and Notes share the idx_td_search FULLTEXT index backing
// dashboard free-text search over registered domains.
func TestTenantDomainSearchIndexTags(t *testing.T) {
	typ := reflect.TypeOf(TenantDomain{})

	for _, name := range []string{"Domain", "Notes"} {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("TenantDomain has no field %s", name)
		}
		tag := field.Tag.Get("gorm")
		if !strings.Contains(tag, "index:idx_td_search,class:FULLTEXT") {
			t.Errorf("%s gorm tag %q is missing the idx_td_search FULLTEXT index", name, tag)
		}
	}

	domain, _ := typ.FieldByName("Domain")
	if !strings.Contains(domain.Tag.Get("gorm"), "uniqueIndex") {
		t.Error("Domain lost its unique index")
	}
}
