package ftracker

var FloorDiv = floorDiv
