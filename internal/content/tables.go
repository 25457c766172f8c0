package content

var exampleWords = [26]string{
	"Apple", "Ball", "Cat", "Dog", "Elephant",
	"Fish", "Giraffe", "Hat", "Ice cream", "Jelly",
	"Kite", "Lion", "Monkey", "Nest", "Orange",
	"Penguin", "Queen", "Rabbit", "Sun", "Tree",
	"Umbrella", "Van", "Water", "X-ray", "Yoyo",
	"Zebra",
}

var numberWords = [20]string{
	"One", "Two", "Three", "Four", "Five",
	"Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen", "Twenty",
}

var colors = []Color{
	{Name: "Red", Hex: "#E74C3C", Example: "Red like an apple"},
	{Name: "Orange", Hex: "#E67E22", Example: "Orange like a carrot"},
	{Name: "Yellow", Hex: "#F1C40F", Example: "Yellow like a banana"},
	{Name: "Green", Hex: "#2ECC71", Example: "Green like the grass"},
	{Name: "Blue", Hex: "#3498DB", Example: "Blue like the sky"},
	{Name: "Purple", Hex: "#9B59B6", Example: "Purple like grapes"},
	{Name: "Pink", Hex: "#FF8FB1", Example: "Pink like a flamingo"},
	{Name: "Brown", Hex: "#8B5A2B", Example: "Brown like chocolate"},
	{Name: "Black", Hex: "#1C1C1C", Example: "Black like the night"},
	{Name: "White", Hex: "#F5F5F5", Example: "White like snow"},
}

var shapeNames = [8]string{
	"Circle", "Square", "Triangle", "Rectangle",
	"Oval", "Star", "Heart", "Diamond",
}

var shapeDescriptions = [8]string{
	"Round like a ball",
	"Four equal sides",
	"Three sides and corners",
	"Four sides, like a door",
	"Like a stretched circle",
	"Points in the sky",
	"Symbol of love",
	"Like a kite shape",
}

var questionBanks = map[Category][]Question{
	Alphabet: {
		NewQuestion("What comes after 'A'?", [4]string{"B", "C", "D", "E"}, 0),
		NewQuestion("Which letter makes the 'Meow' sound?", [4]string{"M", "N", "P", "R"}, 0),
		NewQuestion("What letter does 'Dog' start with?", [4]string{"B", "C", "D", "E"}, 2),
	},
	Numbers: {
		NewQuestion("What comes after 5?", [4]string{"4", "6", "7", "8"}, 1),
		NewQuestion("How many fingers do you have on one hand?", [4]string{"3", "4", "5", "6"}, 2),
		NewQuestion("What is two plus two?", [4]string{"2", "3", "4", "5"}, 2),
	},
	Colors: {
		NewQuestion("What color is the sky?", [4]string{"Red", "Green", "Yellow", "Blue"}, 3),
		NewQuestion("What color is a banana?", [4]string{"Red", "Yellow", "Green", "Blue"}, 1),
		NewQuestion("What color is grass?", [4]string{"Blue", "Red", "Green", "Yellow"}, 2),
	},
	Shapes: {
		NewQuestion("Which shape is round?", [4]string{"Square", "Triangle", "Circle", "Rectangle"}, 2),
		NewQuestion("Which shape has three sides?", [4]string{"Circle", "Triangle", "Square", "Rectangle"}, 1),
		NewQuestion("Which shape has four equal sides?", [4]string{"Rectangle", "Circle", "Triangle", "Square"}, 3),
	},
}
