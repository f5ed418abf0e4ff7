package docx

// Version of the go-docx module
const Version = "0.1.0"
