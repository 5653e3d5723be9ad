package untaggedsum

type Shape interface {
	Point()
}
