// Package tabular implements the delimited-table contract shared by every
// audiotools operation: tab-delimited files with a '|' quote character and a
// mandatory header row. Tables are value-producing; operations never mutate
// their inputs.
package tabular
