package cube

// pair moves the sticker at position from to position to on a clockwise turn.
type pair struct {
	from, to int
}

// ringCW is the clockwise quarter turn of a face's own 8 border cells,
// in face-local row-major positions. Position 4 is the fixed center.
var ringCW = [8]pair{
	{0, 2}, {1, 5}, {2, 8}, {5, 7},
	{8, 6}, {7, 3}, {6, 0}, {3, 1},
}

// turnTable binds a face to the facelet face it rotates and the 12
// border facelets of the four side faces it carries along.
type turnTable struct {
	face  int
	cross [12]pair
}

var turnTables = map[Face]turnTable{
	FaceR: {face: 1, cross: [12]pair{
		{18, 2}, {19, 5}, {20, 8},
		{53, 18}, {52, 19}, {51, 20},
		{44, 53}, {43, 52}, {42, 51},
		{2, 44}, {5, 43}, {8, 42},
	}},
	FaceL: {face: 3, cross: [12]pair{
		{0, 24}, {3, 25}, {6, 26},
		{24, 47}, {25, 46}, {26, 45},
		{47, 38}, {46, 37}, {45, 36},
		{38, 0}, {37, 3}, {36, 6},
	}},
	FaceU: {face: 4, cross: [12]pair{
		{9, 0}, {10, 1}, {11, 2},
		{51, 9}, {48, 10}, {45, 11},
		{35, 51}, {34, 48}, {33, 45},
		{0, 35}, {1, 34}, {2, 33},
	}},
	FaceD: {face: 2, cross: [12]pair{
		{27, 8}, {28, 7}, {29, 6},
		{47, 27}, {50, 28}, {53, 29},
		{17, 47}, {16, 50}, {15, 53},
		{8, 17}, {7, 16}, {6, 15},
	}},
	FaceF: {face: 0, cross: [12]pair{
		{9, 18}, {12, 21}, {15, 24},
		{18, 27}, {21, 30}, {24, 33},
		{27, 36}, {30, 39}, {33, 42},
		{36, 9}, {39, 12}, {42, 15},
	}},
	FaceB: {face: 5, cross: [12]pair{
		{11, 38}, {14, 41}, {17, 44},
		{20, 11}, {23, 14}, {26, 17},
		{29, 20}, {32, 23}, {35, 26},
		{38, 29}, {41, 32}, {44, 35},
	}},
}
