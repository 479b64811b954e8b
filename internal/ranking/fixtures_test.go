package ranking

import "time"

const seniorPythonJob = `
Senior Python Developer

We are looking for a Senior Python Developer with 5+ years of experience to join our growing team.

Requirements:
- 5+ years of Python development experience
- Strong experience with Django, Flask, or FastAPI
- Experience with AWS cloud services
- Knowledge of PostgreSQL and MongoDB
- Experience with Docker and Kubernetes
- Bachelor's degree in Computer Science or related field
- Experience with machine learning or data science is a plus

Responsibilities:
- Design and implement scalable backend services
- Lead technical initiatives and mentor junior developers
- Collaborate with cross-functional teams
- Write clean, maintainable code
`

const pythonResume = `
John Smith
Senior Python Developer
Email: john.smith@email.com
Phone: (555) 123-4567

Experience
----------
Senior Python Developer | TechCorp Inc. | 2019 - Present
- Developed RESTful APIs using FastAPI and Django
- Led a team of 5 developers on a microservices migration project
- Implemented CI/CD pipelines using Jenkins and Docker
- Deployed applications to AWS EC2 and ECS
- Optimized database queries reducing response time by 40%

Python Developer | DataSolutions LLC | 2017 - 2019
- Built data processing pipelines using Python and Pandas
- Developed web applications using Flask
- Worked with PostgreSQL and MongoDB databases
- Implemented unit tests using pytest

Education
---------
Bachelor of Science in Computer Science
State University, 2017

Skills
-------
- Languages: Python, JavaScript, SQL, HTML, CSS
- Frameworks: Django, Flask, FastAPI, React
- Cloud & DevOps: AWS, Docker, Kubernetes, Jenkins, Git
- Databases: PostgreSQL, MongoDB, Redis
- Data Science: Pandas, NumPy, scikit-learn
`

const marketingResume = `
Jane Doe
Marketing Manager
Email: jane.doe@email.com

Experience
----------
Marketing Manager | RetailCo | 2020 - Present
- Developed marketing campaigns for retail products
- Managed social media presence
- Analyzed customer data and created reports

Sales Associate | ShopMart | 2018 - 2020
- Assisted customers with purchases
- Maintained inventory records

Education
---------
Bachelor of Arts in Marketing
City College, 2018

Skills
-------
- Marketing strategy
- Social media management
- Microsoft Office
- Customer service
`

func fixedYear(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC) }
}
