// Package catalog defines the tabular result model of a scan: the Record
// row type, the ordered Catalog collection, and the whole-catalog text
// normalization applied before persistence.
package catalog
