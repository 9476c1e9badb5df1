package store

import "fmt"

// BadIDParameter is returned when a route id parameter is missing or not numeric
const BadIDParameter = "Bad Id parameter"

// ExistsIDMessage describes a create rejected because the id is already taken
func ExistsIDMessage(name string, id int64) string {
	return fmt.Sprintf("%s with id %d already exists.", name, id)
}

// InvalidIDMessage describes a create rejected because the id is the unset sentinel
func InvalidIDMessage(name string) string {
	return fmt.Sprintf("%s requires a valid non-zero id.", name)
}

// IDNotMatchMessage describes an update whose route id disagrees with the body id
func IDNotMatchMessage() string {
	return "Id parameter does not match the id in the request body."
}

// DeleteErrorMessage describes a delete rejected because dependent records exist
func DeleteErrorMessage(name string, id int64, dependent string) string {
	return fmt.Sprintf("%s with id %d cannot be deleted because dependent %s records exist.", name, id, dependent)
}
