package locations

// DefaultLocations is the built-in barangay list the survey team started from.
// User-added entries are merged on top of it.
var DefaultLocations = []string{
	"Agus",
	"Babag",
	"Bankal",
	"Basak",
	"Buaya",
	"Calawisan",
	"Canjulao",
	"Gun-ob",
	"Ibo",
	"Looc",
	"Mactan",
	"Maribago",
	"Marigondon",
	"Pajac",
	"Pajo",
	"Poblacion",
	"Punta Engaño",
	"Pusok",
	"Sabang",
	"Santa Rosa",
	"Subabasbas",
	"Talima",
	"Tingo",
	"Tungasan",
}
