package scoring

// nigerianUniversities feeds the education-fit bonus. Matching is
// case-insensitive substring in either direction, so short common forms
// ("unilag") hit the same as full names.
var nigerianUniversities = []string{
	"university of lagos",
	"unilag",
	"university of ibadan",
	"obafemi awolowo university",
	"university of nigeria",
	"ahmadu bello university",
	"university of benin",
	"covenant university",
	"lagos state university",
	"federal university of technology",
	"university of ilorin",
	"nnamdi azikiwe university",
	"university of port harcourt",
	"babcock university",
	"yaba college of technology",
}

// localCompanies feeds the cultural-fit bonus for candidates with local
// industry experience.
var localCompanies = []string{
	"flutterwave",
	"paystack",
	"interswitch",
	"andela",
	"kuda",
	"piggyvest",
	"opay",
	"moniepoint",
	"jumia",
	"konga",
	"access bank",
	"gtbank",
	"guaranty trust",
	"zenith bank",
	"mtn nigeria",
	"airtel nigeria",
	"dangote",
}
