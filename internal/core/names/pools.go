package names

import "slices"

// Name lists are fixed at build time and never modified.
var (
	givenMale = [...]string{
		"Ælfred",
		"Ælfric",
		"Æthelbald",
		"Æthelberht",
		"Æthelred",
		"Æthelstan",
		"Æthelwulf",
		"Aldhelm",
		"Alwin",
		"Ansel",
		"Baldwin",
		"Beornwulf",
		"Bertram",
		"Brihtric",
		"Cenric",
		"Cuthbert",
		"Cynewulf",
		"Dunstan",
		"Eadgar",
		"Eadmund",
		"Eadric",
		"Eadwig",
		"Eadwine",
		"Ecgberht",
		"Edward",
		"Godric",
		"Godwin",
		"Guthlac",
		"Harold",
		"Hereward",
		"Hugh",
		"Ine",
		"Leofric",
		"Leofwine",
		"Offa",
		"Osbert",
		"Osmund",
		"Oswald",
		"Oswin",
		"Ranulf",
		"Reginald",
		"Robert",
		"Sigeberht",
		"Simon",
		"Swithun",
		"Thurstan",
		"Walter",
		"Wigstan",
		"Wilfrid",
		"Wulfgar",
		"Wulfnoth",
		"Wulfric",
		"Wulfstan",
	}

	givenFemale = [...]string{
		"Ælfgifu",
		"Ælfthryth",
		"Æthelflæd",
		"Æthelthryth",
		"Agnes",
		"Alditha",
		"Alice",
		"Amice",
		"Avelina",
		"Beatrix",
		"Cecily",
		"Cwenburh",
		"Cyneburh",
		"Cynethryth",
		"Eadburh",
		"Eadgifu",
		"Eadgyth",
		"Ealhswith",
		"Eanflæd",
		"Edith",
		"Elfleda",
		"Emma",
		"Godgifu",
		"Gunhild",
		"Hild",
		"Isabel",
		"Joan",
		"Juliana",
		"Leofrun",
		"Mabel",
		"Margery",
		"Matilda",
		"Mildrith",
		"Osburh",
		"Petronilla",
		"Rohese",
		"Sæthryth",
		"Sybil",
		"Wulfrun",
		"Wynflæd",
	}

	surnamesNoble = [...]string{
		"Ashby",
		"Balliol",
		"Beauchamp",
		"Bigod",
		"Bohun",
		"Cerdicing",
		"Clare",
		"Courtenay",
		"Damory",
		"Despenser",
		"de Ferrers",
		"de Lacy",
		"de Vere",
		"FitzAlan",
		"FitzWalter",
		"Godwinson",
		"Grey",
		"Hastings",
		"Lovell",
		"Mauleverer",
		"Montacute",
		"Mortimer",
		"Mowbray",
		"Neville",
		"Percy",
		"Peverel",
		"Scrope",
		"Stafford",
		"Talbot",
		"Warenne",
	}

	surnamesCommoner = [...]string{
		"Aldridge",
		"Atwood",
		"Baker",
		"Barker",
		"Brewster",
		"Brook",
		"Carter",
		"Chandler",
		"Cooper",
		"Cotter",
		"Dyer",
		"Fletcher",
		"Fowler",
		"Fuller",
		"Glover",
		"Hayward",
		"Hobbs",
		"Kemp",
		"Mason",
		"Miller",
		"Osgood",
		"Reeve",
		"Sawyer",
		"Shepherd",
		"Smith",
		"Thatcher",
		"Turner",
		"Wainwright",
		"Webster",
		"Wright",
	}
)

// GivenMale returns all male given names.
func GivenMale() []string { return slices.Clone(givenMale[:]) }

// GivenFemale returns all female given names.
func GivenFemale() []string { return slices.Clone(givenFemale[:]) }

// SurnamesNoble returns all noble surnames.
func SurnamesNoble() []string { return slices.Clone(surnamesNoble[:]) }

// SurnamesCommoner returns all commoner surnames.
func SurnamesCommoner() []string { return slices.Clone(surnamesCommoner[:]) }
