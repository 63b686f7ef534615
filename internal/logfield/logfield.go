package lf

import "go.uber.org/zap"

const (
	FieldModule      = "module"
	FieldStudentID   = "student_id"
	FieldStudentName = "student_name"
	FieldPath        = "path"
	FieldNumStudents = "num_students"
	FieldNumSubjects = "num_subjects"
	FieldFormat      = "format"
	FieldSize        = "size"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func StudentID(ID string) zap.Field {
	return zap.String(FieldStudentID, ID)
}

func StudentName(name string) zap.Field {
	return zap.String(FieldStudentName, name)
}

func Path(path string) zap.Field {
	return zap.String(FieldPath, path)
}

func NumStudents(n int) zap.Field {
	return zap.Int(FieldNumStudents, n)
}

func NumSubjects(n int) zap.Field {
	return zap.Int(FieldNumSubjects, n)
}

func Format(format string) zap.Field {
	return zap.String(FieldFormat, format)
}

func Size(size string) zap.Field {
	return zap.String(FieldSize, size)
}
